// Package importer loads recipes from XML documents. Every record is rendered into
// the same delimited form fields a user would type and goes through the ingredient
// parser, so imported recipes obey exactly the same rules as hand-entered ones.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/recipe-book/internal/fileutils"
	"fjacquet/recipe-book/internal/ingredientparser"
	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/models"
	"fjacquet/recipe-book/internal/parsererror"
	"fjacquet/recipe-book/internal/xmlutils"

	"gopkg.in/xmlpath.v2"
)

// XMLExtension is the file extension picked up when importing a directory.
const XMLExtension = ".xml"

// RecipeAdder is the part of the recipe store the importer needs.
type RecipeAdder interface {
	Add(recipe models.Recipe) error
}

// Result summarizes an import run.
type Result struct {
	Files    []string
	Imported []string
	Failed   []*parsererror.ImportError
}

// merge appends other to r.
func (r *Result) merge(other Result) {
	r.Files = append(r.Files, other.Files...)
	r.Imported = append(r.Imported, other.Imported...)
	r.Failed = append(r.Failed, other.Failed...)
}

// XMLImporter imports recipe XML documents into a store.
type XMLImporter struct {
	store  RecipeAdder
	paths  xmlutils.RecipeXPaths
	logger logging.Logger
}

// NewXMLImporter creates an importer adding recipes to store.
func NewXMLImporter(store RecipeAdder, logger logging.Logger) *XMLImporter {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &XMLImporter{
		store:  store,
		paths:  xmlutils.DefaultRecipeXPaths(),
		logger: logger,
	}
}

// ImportPath imports a single XML file, or every XML file below a directory in
// lexical order.
func (im *XMLImporter) ImportPath(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("input path does not exist: %s", path)
	}
	if !info.IsDir() {
		return im.ImportFile(path)
	}

	files, err := fileutils.ListFilesWithExtension(path, XMLExtension)
	if err != nil {
		return Result{}, err
	}
	im.logger.Info("Importing recipe directory",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(files)))

	var total Result
	for _, file := range files {
		res, err := im.ImportFile(file)
		if err != nil {
			return total, err
		}
		total.merge(res)
	}
	return total, nil
}

// ImportFile imports every recipe of one XML document. A document that cannot be
// read fails the whole call; a rejected record is recorded in Result.Failed and the
// import continues with the next one.
func (im *XMLImporter) ImportFile(filePath string) (Result, error) {
	logger := im.logger.WithField(logging.FieldInputFile, filePath)
	res := Result{Files: []string{filePath}}

	root, err := xmlutils.LoadXMLFile(filePath, logger)
	if err != nil {
		return res, &parsererror.DocumentUnreadableError{FilePath: filePath, Err: err}
	}

	nodes, err := xmlutils.Nodes(root, im.paths.Recipe)
	if err != nil {
		return res, err
	}

	for i, node := range nodes {
		name, recipe, err := im.readRecipe(node)
		if err == nil {
			err = im.store.Add(recipe)
		}
		if err != nil {
			importErr := &parsererror.ImportError{FilePath: filepath.Base(filePath), Record: i + 1, Name: name, Err: err}
			logger.WithError(err).Warn("Recipe rejected",
				logging.F(logging.FieldIndex, i+1),
				logging.F(logging.FieldRecipe, name))
			res.Failed = append(res.Failed, importErr)
			continue
		}
		res.Imported = append(res.Imported, recipe.Name)
	}

	logger.Info("Imported recipes",
		logging.F("imported", len(res.Imported)),
		logging.F("failed", len(res.Failed)))
	return res, nil
}

// readRecipe renders one <recipe> node into form fields and parses them.
func (im *XMLImporter) readRecipe(node *xmlpath.Node) (string, models.Recipe, error) {
	name, err := xmlutils.FirstFromXML(node, im.paths.RecipeName)
	if err != nil {
		return "", models.Recipe{}, err
	}

	ingredients, err := xmlutils.Nodes(node, im.paths.Ingredient)
	if err != nil {
		return name, models.Recipe{}, err
	}

	names := make([]string, 0, len(ingredients))
	qtys := make([]string, 0, len(ingredients))
	cals := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		fields, err := im.readIngredient(ing)
		if err != nil {
			return name, models.Recipe{}, err
		}
		names = append(names, fields[0])
		qtys = append(qtys, fields[1])
		cals = append(cals, fields[2])
	}

	recipe, err := ingredientparser.ParseRecipe(name,
		strings.Join(names, models.DisplaySeparator),
		strings.Join(qtys, models.DisplaySeparator),
		strings.Join(cals, models.DisplaySeparator))
	return name, recipe, err
}

// readIngredient returns the name, "qty(unit)" token and calories of one
// <ingredient> node.
func (im *XMLImporter) readIngredient(node *xmlpath.Node) ([3]string, error) {
	var out [3]string
	var qty, unit string
	for _, f := range []struct {
		xpath string
		dst   *string
	}{
		{im.paths.IngredientName, &out[0]},
		{im.paths.Quantity, &qty},
		{im.paths.Unit, &unit},
		{im.paths.Calories, &out[2]},
	} {
		v, err := xmlutils.FirstFromXML(node, f.xpath)
		if err != nil {
			return out, err
		}
		*f.dst = v
	}
	out[1] = fmt.Sprintf("%s(%s)", qty, unit)
	return out, nil
}
