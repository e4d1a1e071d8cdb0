// Package store keeps the ordered recipe collection and mirrors it to a JSON
// document on disk after every change.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fjacquet/recipe-book/internal/fileutils"
	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/models"
	"fjacquet/recipe-book/internal/parsererror"
	"fjacquet/recipe-book/internal/textutils"
)

const backupSuffix = ".bak"

// RecipeStore manages loading and saving of the recipe document.
//
// Names are unique under case folding. Every mutation persists the whole
// collection; if persisting fails the in-memory collection is rolled back.
type RecipeStore struct {
	filePath string
	backup   bool
	logger   logging.Logger
	recipes  []models.Recipe
}

// NewRecipeStore creates a store backed by filePath. Nothing is read until Load.
func NewRecipeStore(filePath string, logger logging.Logger) *RecipeStore {
	if filePath == "" {
		filePath = models.DefaultRecipesFile
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &RecipeStore{
		filePath: filePath,
		logger:   logger.WithField(logging.FieldFile, filePath),
		recipes:  []models.Recipe{},
	}
}

// SetBackup enables copying the previous document to "<file>.bak" before each write.
func (s *RecipeStore) SetBackup(enabled bool) {
	s.backup = enabled
}

// FilePath returns the backing document path.
func (s *RecipeStore) FilePath() string {
	return s.filePath
}

// Load reads the backing document. A missing document is an empty collection.
// A document that exists but cannot be decoded leaves the store unchanged and
// returns a DocumentUnreadableError.
func (s *RecipeStore) Load() ([]models.Recipe, error) {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("Recipe document not found, starting with an empty collection")
		s.recipes = []models.Recipe{}
		return s.Recipes(), nil
	}
	if err != nil {
		return nil, &parsererror.DocumentUnreadableError{FilePath: s.filePath, Err: err}
	}

	var recipes []models.Recipe
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &recipes); err != nil {
			return nil, &parsererror.DocumentUnreadableError{FilePath: s.filePath, Err: err}
		}
	}

	for i, r := range recipes {
		fixed, changed := r.Reconcile()
		if changed {
			s.logger.Warn("Stored calorie total disagrees with ingredients, using derived total",
				logging.F(logging.FieldRecipe, r.Name),
				logging.F("stored_total", r.TotalCalories.String()),
				logging.F("derived_total", fixed.TotalCalories.String()))
		}
		recipes[i] = fixed
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	s.recipes = recipes
	s.logger.Debug("Loaded recipes", logging.F(logging.FieldCount, len(recipes)))
	return s.Recipes(), nil
}

// Recipes returns a copy of the collection in display order.
func (s *RecipeStore) Recipes() []models.Recipe {
	out := make([]models.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Clone()
	}
	return out
}

// Names returns the recipe names in display order.
func (s *RecipeStore) Names() []string {
	names := make([]string, len(s.recipes))
	for i, r := range s.recipes {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of recipes.
func (s *RecipeStore) Len() int {
	return len(s.recipes)
}

// Get returns the recipe at index.
func (s *RecipeStore) Get(index int) (models.Recipe, error) {
	if index < 0 || index >= len(s.recipes) {
		return models.Recipe{}, &parsererror.InvalidIndexError{Index: index, Size: len(s.recipes)}
	}
	return s.recipes[index].Clone(), nil
}

// Find returns the index of the recipe whose name matches name under case folding.
func (s *RecipeStore) Find(name string) (int, bool) {
	return s.indexOf(name, -1)
}

func (s *RecipeStore) indexOf(name string, skip int) (int, bool) {
	key := textutils.Fold(name)
	for i, r := range s.recipes {
		if i != skip && textutils.Fold(r.Name) == key {
			return i, true
		}
	}
	return -1, false
}

// Add appends recipe and persists. A recipe whose name matches an existing one
// under case folding is rejected with DuplicateNameError.
func (s *RecipeStore) Add(recipe models.Recipe) error {
	recipe, err := prepare(recipe)
	if err != nil {
		return err
	}
	if i, found := s.indexOf(recipe.Name, -1); found {
		return &parsererror.DuplicateNameError{Name: recipe.Name, Existing: s.recipes[i].Name}
	}

	next := append(s.Recipes(), recipe)
	if err := s.commit(next); err != nil {
		return fmt.Errorf("add recipe '%s': %w", recipe.Name, err)
	}

	s.logger.Info("Recipe added", logging.F(logging.FieldRecipe, recipe.Name))
	return nil
}

// Update replaces the recipe at index wholesale and persists. The new name may
// equal the old one, but not the name of any other recipe.
func (s *RecipeStore) Update(index int, recipe models.Recipe) error {
	if index < 0 || index >= len(s.recipes) {
		return &parsererror.InvalidIndexError{Index: index, Size: len(s.recipes)}
	}
	recipe, err := prepare(recipe)
	if err != nil {
		return err
	}
	if i, found := s.indexOf(recipe.Name, index); found {
		return &parsererror.DuplicateNameError{Name: recipe.Name, Existing: s.recipes[i].Name}
	}

	next := s.Recipes()
	previous := next[index].Name
	next[index] = recipe
	if err := s.commit(next); err != nil {
		return fmt.Errorf("update recipe '%s': %w", previous, err)
	}

	s.logger.Info("Recipe updated",
		logging.F(logging.FieldIndex, index),
		logging.F(logging.FieldRecipe, recipe.Name),
		logging.F("previous_name", previous))
	return nil
}

// Delete removes every recipe whose name matches name under case folding and
// persists. It returns how many were removed; zero is a successful no-op.
func (s *RecipeStore) Delete(name string) (int, error) {
	key := textutils.Fold(name)
	next := make([]models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if textutils.Fold(r.Name) != key {
			next = append(next, r.Clone())
		}
	}

	removed := len(s.recipes) - len(next)
	if removed == 0 {
		s.logger.Debug("No recipe to delete", logging.F(logging.FieldRecipe, name))
		return 0, nil
	}

	if err := s.commit(next); err != nil {
		return 0, fmt.Errorf("delete recipe '%s': %w", name, err)
	}

	s.logger.Info("Recipe deleted",
		logging.F(logging.FieldRecipe, name),
		logging.F(logging.FieldCount, removed))
	return removed, nil
}

// Persist writes the whole collection to the backing document, replacing it atomically.
func (s *RecipeStore) Persist() error {
	data, err := encode(s.recipes)
	if err != nil {
		return fmt.Errorf("error marshaling recipes: %w", err)
	}

	if s.backup {
		if err := fileutils.CopyFile(s.filePath, s.filePath+backupSuffix); err != nil {
			s.logger.WithError(err).Warn("Failed to back up recipe document")
		}
	}

	if err := fileutils.WriteFileAtomic(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("error writing recipes: %w", err)
	}

	s.logger.Debug("Saved recipes", logging.F(logging.FieldCount, len(s.recipes)))
	return nil
}

func (s *RecipeStore) commit(next []models.Recipe) error {
	previous := s.recipes
	s.recipes = next
	if err := s.Persist(); err != nil {
		s.recipes = previous
		return err
	}
	return nil
}

// prepare trims the name and re-derives the calorie total.
func prepare(recipe models.Recipe) (models.Recipe, error) {
	recipe = models.NewRecipe(recipe.Name, recipe.Ingredients)
	if recipe.Name == "" {
		return models.Recipe{}, parsererror.ErrEmptyRecipeName
	}
	return recipe, nil
}

func encode(recipes []models.Recipe) ([]byte, error) {
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recipes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
