package recipe_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"fjacquet/recipe-book/cmd/recipe"
	"fjacquet/recipe-book/cmd/root"
	"fjacquet/recipe-book/internal/config"
	"fjacquet/recipe-book/internal/container"
	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := recipe.NewCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func addFriedRice(t *testing.T) {
	t.Helper()
	_, err := run(t, "add", "--name", "Fried Rice",
		"--ingredients", "egg ; rice", "--quantities", "2(pcs) ; 200(g)", "--calories", "70 ; 300")
	require.NoError(t, err)
}

func TestAdd(t *testing.T) {
	c := setupContainer(t)

	out, err := run(t, "add", "-n", "Fried Rice", "-i", "egg ; rice", "-q", "2(pcs) ; 200(g)", "-c", "70 ; 300")
	require.NoError(t, err)
	assert.Equal(t, "Recipe 'Fried Rice' added (370 kcal).\n", out)
	assert.Equal(t, []string{"Fried Rice"}, c.GetStore().Names())
}

func TestAdd_Errors(t *testing.T) {
	setupContainer(t)
	addFriedRice(t)

	_, err := run(t, "add", "--name", "fried rice", "--ingredients", "rice", "--quantities", "1(g)", "--calories", "1")
	var dup *parsererror.DuplicateNameError
	assert.True(t, errors.As(err, &dup))

	_, err = run(t, "add", "--name", "Soup", "--ingredients", "leek ; potato", "--quantities", "1(pcs)", "--calories", "30 ; 200")
	var mismatch *parsererror.CountMismatchError
	assert.True(t, errors.As(err, &mismatch))

	_, err = run(t, "add", "--name", " ", "--ingredients", "leek", "--quantities", "1(pcs)", "--calories", "30")
	assert.ErrorIs(t, err, parsererror.ErrEmptyRecipeName)

	_, err = run(t, "add", "--name", "Air")
	assert.ErrorIs(t, err, parsererror.ErrNoIngredients)
}

func TestEdit_KeepsUnchangedFields(t *testing.T) {
	c := setupContainer(t)
	addFriedRice(t)

	out, err := run(t, "edit", "fried", "rice", "--calories", "80 ; 300")
	require.NoError(t, err)
	assert.Equal(t, "Recipe 'Fried Rice' updated (380 kcal).\n", out)

	r, err := c.GetStore().Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Fried Rice", r.Name)
	assert.Equal(t, "200(g)", r.Ingredients[1].QuantityToken())
}

func TestEdit_Rename(t *testing.T) {
	c := setupContainer(t)
	addFriedRice(t)
	_, err := run(t, "add", "--name", "Soup", "--ingredients", "leek", "--quantities", "1(pcs)", "--calories", "30")
	require.NoError(t, err)

	_, err = run(t, "edit", "Soup", "--name", "Leek Soup")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fried Rice", "Leek Soup"}, c.GetStore().Names())

	_, err = run(t, "edit", "Leek Soup", "--name", "FRIED RICE")
	var dup *parsererror.DuplicateNameError
	assert.True(t, errors.As(err, &dup))

	_, err = run(t, "edit", "Stew")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	c := setupContainer(t)
	addFriedRice(t)

	out, err := run(t, "delete", "Pancakes")
	require.NoError(t, err)
	assert.Equal(t, "No recipe named 'Pancakes'.\n", out)

	out, err = run(t, "delete", "FRIED", "RICE")
	require.NoError(t, err)
	assert.Equal(t, "Recipe 'FRIED RICE' deleted.\n", out)
	assert.Equal(t, 0, c.GetStore().Len())
}

func TestListAndShow(t *testing.T) {
	setupContainer(t)

	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "No recipes.\n", out)

	addFriedRice(t)

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "Fried Rice - 370 kcal\n", out)

	out, err = run(t, "show", "fried rice")
	require.NoError(t, err)
	assert.Equal(t, "Fried Rice (370 kcal)\n  - egg : 2(pcs) - 70 kcal\n  - rice : 200(g) - 300 kcal\n", out)

	out, err = run(t, "show", "Fried Rice", "--format", "json")
	require.NoError(t, err)
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, float64(370), decoded[0]["total_cal"])

	_, err = run(t, "show", "Fried Rice", "--format", "pdf")
	assert.Error(t, err)

	_, err = run(t, "show", "Stew")
	assert.Error(t, err)
}

func TestCommand_RequiresContainer(t *testing.T) {
	root.SetContainer(nil)
	_, err := run(t, "list")
	assert.Error(t, err)
}
