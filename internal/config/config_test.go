package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEnvFile(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, "", FindEnvFile())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RECIPEBOOK_LOG_LEVEL=debug\n"), 0600))
	assert.Equal(t, ".env", FindEnvFile())
}

func TestFindEnvFile_ParentDirectory(t *testing.T) {
	dir := isolate(t)
	child := filepath.Join(dir, "child")
	require.NoError(t, os.Mkdir(child, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("X=1\n"), 0600))
	require.NoError(t, os.Chdir(child))

	assert.Equal(t, filepath.Join("..", ".env"), FindEnvFile())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("RECIPEBOOK_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("RECIPEBOOK_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("RECIPEBOOK_TEST_UNSET_VALUE", "fallback"))
}
