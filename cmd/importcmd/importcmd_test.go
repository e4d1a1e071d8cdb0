package importcmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/recipe-book/cmd/importcmd"
	"fjacquet/recipe-book/cmd/root"
	"fjacquet/recipe-book/internal/config"
	"fjacquet/recipe-book/internal/container"
	"fjacquet/recipe-book/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `<recipes>
  <recipe>
    <name>Fried Rice</name>
    <ingredient><name>egg</name><qty>2</qty><unit>pcs</unit><kcal>70</kcal></ingredient>
  </recipe>
  <recipe>
    <name>Broken</name>
    <ingredient><name>flour</name><qty>lots</qty><unit>g</unit><kcal>100</kcal></ingredient>
  </recipe>
</recipes>`

func setupContainer(t *testing.T) *container.Container {
	t.Helper()
	cfg := &config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Data:   config.DataConfig{Directory: t.TempDir(), RecipesFile: "recipes.json", SubstitutesFile: "substitutes.json"},
		Export: config.ExportConfig{Format: "text", CSVDelimiter: ","},
	}
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	root.SetContainer(c)
	t.Cleanup(func() { root.SetContainer(nil) })
	return c
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := importcmd.NewCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestImportXML(t *testing.T) {
	c := setupContainer(t)
	path := filepath.Join(t.TempDir(), "recipes.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	out, errOut, err := run(t, "xml", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 recipe(s) from 1 file(s), 1 rejected.\n  + Fried Rice\n", out)
	assert.Contains(t, errOut, "recipe #2 'Broken' rejected")
	assert.Equal(t, []string{"Fried Rice"}, c.GetStore().Names())
}

func TestImportXML_MissingInput(t *testing.T) {
	setupContainer(t)

	_, _, err := run(t, "xml", "--input", filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)

	_, _, err = run(t, "xml")
	assert.Error(t, err)
}
