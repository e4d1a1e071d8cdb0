package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/parsererror"
	"fjacquet/recipe-book/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipesXML = `<?xml version="1.0" encoding="UTF-8"?>
<recipes>
  <recipe>
    <name>Fried Rice</name>
    <ingredient><name>egg</name><qty>2</qty><unit>pcs</unit><kcal>70</kcal></ingredient>
    <ingredient><name>rice</name><qty>200</qty><unit>g</unit><kcal>300</kcal></ingredient>
  </recipe>
  <recipe>
    <name>Broken</name>
    <ingredient><name>flour</name><qty>lots</qty><unit>g</unit><kcal>100</kcal></ingredient>
  </recipe>
  <recipe>
    <name>Empty</name>
  </recipe>
  <recipe>
    <name>fried rice</name>
    <ingredient><name>rice</name><qty>1</qty><unit>g</unit><kcal>1</kcal></ingredient>
  </recipe>
  <recipe>
    <name>Tea</name>
    <ingredient><name>water</name><qty>0.25</qty><unit>l</unit><kcal>0</kcal></ingredient>
  </recipe>
</recipes>`

func newStore(t *testing.T) *store.RecipeStore {
	t.Helper()
	s := store.NewRecipeStore(filepath.Join(t.TempDir(), "recipes.json"), nil)
	_, err := s.Load()
	require.NoError(t, err)
	return s
}

func writeXML(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportFile(t *testing.T) {
	s := newStore(t)
	logger := logging.NewMockLogger()
	im := NewXMLImporter(s, logger)

	res, err := im.ImportFile(writeXML(t, t.TempDir(), "recipes.xml", recipesXML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Fried Rice", "Tea"}, res.Imported)
	assert.Equal(t, []string{"Fried Rice", "Tea"}, s.Names())
	require.Len(t, res.Failed, 3)

	var qtyErr *parsererror.InvalidQuantityFormatError
	assert.True(t, errors.As(res.Failed[0], &qtyErr))
	assert.Equal(t, 2, res.Failed[0].Record)
	assert.Equal(t, "Broken", res.Failed[0].Name)

	assert.ErrorIs(t, res.Failed[1], parsererror.ErrNoIngredients)

	var dup *parsererror.DuplicateNameError
	assert.True(t, errors.As(res.Failed[2], &dup))

	rice, err := s.Get(0)
	require.NoError(t, err)
	assert.True(t, rice.TotalCalories.Equal(decimal.NewFromInt(370)))
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 3)
}

func TestImportFile_Unreadable(t *testing.T) {
	im := NewXMLImporter(newStore(t), nil)
	_, err := im.ImportFile(writeXML(t, t.TempDir(), "bad.xml", "<recipes><recipe>"))

	var docErr *parsererror.DocumentUnreadableError
	assert.True(t, errors.As(err, &docErr))
}

func TestImportPath_Directory(t *testing.T) {
	dir := t.TempDir()
	writeXML(t, dir, "a.xml", `<recipes><recipe><name>Soup</name>
<ingredient><name>leek</name><qty>1</qty><unit>pcs</unit><kcal>30</kcal></ingredient></recipe></recipes>`)
	writeXML(t, dir, "b.xml", `<recipes><recipe><name>Salad</name>
<ingredient><name>lettuce</name><qty>1</qty><unit></unit><kcal>15</kcal></ingredient></recipe></recipes>`)
	writeXML(t, dir, "notes.txt", "ignored")

	s := newStore(t)
	res, err := NewXMLImporter(s, nil).ImportPath(dir)
	require.NoError(t, err)

	assert.Len(t, res.Files, 2)
	assert.Equal(t, []string{"Soup", "Salad"}, res.Imported)
	assert.Empty(t, res.Failed)

	salad, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "", salad.Ingredients[0].Unit)
}

func TestImportPath_Missing(t *testing.T) {
	_, err := NewXMLImporter(newStore(t), nil).ImportPath(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}
