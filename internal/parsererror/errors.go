// Package parsererror defines the typed errors returned by the recipe core.
// Every error here is recoverable: the caller reports it and the user retries.
package parsererror

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that carry no extra context.
var (
	ErrEmptyRecipeName = errors.New("recipe name is empty")
	ErrNoIngredients   = errors.New("recipe has no ingredients")
	ErrNoActiveEdit    = errors.New("no recipe is being edited")
	ErrEditInProgress  = errors.New("another recipe is already being edited")
	ErrStaleEdit       = errors.New("the recipe being edited has changed position or name")
)

// CountMismatchError is returned when the names, quantities and calories lists
// do not contain the same number of entries.
type CountMismatchError struct {
	Names      int
	Quantities int
	Calories   int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("ingredient count mismatch: %d names, %d quantities, %d calories",
		e.Names, e.Quantities, e.Calories)
}

// InvalidQuantityFormatError is returned when a quantity token is not of the form "200(g)".
type InvalidQuantityFormatError struct {
	Token string
}

func (e *InvalidQuantityFormatError) Error() string {
	return fmt.Sprintf("invalid quantity format: '%s' (expected e.g. 200(g))", e.Token)
}

// InvalidCalorieError is returned when a calorie token is not a decimal number.
type InvalidCalorieError struct {
	Token string
	Err   error
}

func (e *InvalidCalorieError) Error() string {
	return fmt.Sprintf("invalid calorie: '%s'", e.Token)
}

func (e *InvalidCalorieError) Unwrap() error {
	return e.Err
}

// DuplicateNameError is returned when a recipe name already exists in the store
// under a case-insensitive comparison.
type DuplicateNameError struct {
	Name     string
	Existing string
}

func (e *DuplicateNameError) Error() string {
	if e.Existing != "" && e.Existing != e.Name {
		return fmt.Sprintf("recipe '%s' already exists (as '%s')", e.Name, e.Existing)
	}
	return fmt.Sprintf("recipe '%s' already exists", e.Name)
}

// InvalidIndexError is returned when a store position is out of range.
type InvalidIndexError struct {
	Index int
	Size  int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("recipe index %d out of range (store holds %d recipes)", e.Index, e.Size)
}

// DocumentUnreadableError is returned when a JSON document exists but cannot be
// read or decoded.
type DocumentUnreadableError struct {
	FilePath string
	Err      error
}

func (e *DocumentUnreadableError) Error() string {
	return fmt.Sprintf("cannot read document '%s': %v", e.FilePath, e.Err)
}

func (e *DocumentUnreadableError) Unwrap() error {
	return e.Err
}

// CatalogUnavailableError is returned when the substitute catalog is missing or
// corrupt. The catalog loader still returns an empty catalog alongside it.
type CatalogUnavailableError struct {
	FilePath string
	Missing  bool
	Err      error
}

func (e *CatalogUnavailableError) Error() string {
	if e.Missing {
		return fmt.Sprintf("substitute catalog '%s' not found", e.FilePath)
	}
	return fmt.Sprintf("failed to read substitute catalog '%s': %v", e.FilePath, e.Err)
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

// ImportError is returned when one record of an import document is rejected.
type ImportError struct {
	FilePath string
	Record   int
	Name     string
	Err      error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%s: recipe #%d '%s' rejected: %v", e.FilePath, e.Record, e.Name, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
