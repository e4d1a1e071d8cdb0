package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/recipe-book/internal/fileutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()
	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "missing")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, fileutils.EnsureDirectoryExists(dir))
	assert.True(t, fileutils.DirectoryExists(dir))
	assert.NoError(t, fileutils.EnsureDirectoryExists("."))
}

func TestWriteFileAtomic_CreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "recipes.json")

	require.NoError(t, fileutils.WriteFileAtomic(target, []byte("[]"), 0600))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	require.NoError(t, fileutils.WriteFileAtomic(target, []byte(`[{"name":"a"}]`), 0600))
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"a"}]`, string(data))

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0600))

	err := fileutils.WriteFileAtomic(target, []byte("data"), 0600)
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be cleaned up on failure")
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.json")
	dst := filepath.Join(dir, "src.json.bak")

	require.NoError(t, fileutils.CopyFile(src, dst), "missing source is not an error")
	assert.False(t, fileutils.FileExists(dst))

	require.NoError(t, os.WriteFile(src, []byte("content"), 0600))
	require.NoError(t, fileutils.CopyFile(src, dst))
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestListFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.xml"), []byte("<a/>"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte("{}"), 0600))

	files, err := fileutils.ListFilesWithExtension(dir, ".xml")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.xml")}, files)

	_, err = fileutils.ListFilesWithExtension(filepath.Join(dir, "missing"), ".xml")
	assert.Error(t, err)
}
