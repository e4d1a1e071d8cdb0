// Package catalog provides the read-only substitute catalog: ingredients grouped by
// category, each with an ordered list of replacements.
package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"

	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/models"
	"fjacquet/recipe-book/internal/parsererror"
	"fjacquet/recipe-book/internal/textutils"
)

// Entry is one ingredient of the catalog.
type Entry struct {
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Substitutes []string `json:"subs" yaml:"subs"`
}

// document mirrors one value of the substitute document.
type document struct {
	Category    string   `json:"category"`
	Substitutes []string `json:"subs"`
}

// Catalog is an immutable view over the substitute document. Keys are folded at
// load time so lookups ignore case.
type Catalog struct {
	entries    map[string]Entry
	categories map[string][]string
}

// Empty returns a catalog with no entries.
func Empty() *Catalog {
	return &Catalog{
		entries:    map[string]Entry{},
		categories: map[string][]string{},
	}
}

// Load reads the substitute document at filePath. The returned catalog is never nil:
// when the document is missing or corrupt an empty catalog is returned together
// with a CatalogUnavailableError so callers can report it and carry on.
func Load(filePath string, logger logging.Logger) (*Catalog, error) {
	if filePath == "" {
		filePath = models.DefaultSubstitutesFile
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	logger = logger.WithField(logging.FieldFile, filePath)

	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("Substitute catalog not found")
		return Empty(), &parsererror.CatalogUnavailableError{FilePath: filePath, Missing: true, Err: err}
	}
	if err != nil {
		logger.WithError(err).Warn("Failed to read substitute catalog")
		return Empty(), &parsererror.CatalogUnavailableError{FilePath: filePath, Err: err}
	}

	var raw map[string]document
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.WithError(err).Warn("Failed to decode substitute catalog")
		return Empty(), &parsererror.CatalogUnavailableError{FilePath: filePath, Err: err}
	}

	c := build(raw, logger)
	logger.Debug("Loaded substitute catalog",
		logging.F(logging.FieldCount, c.Len()),
		logging.F("categories", len(c.categories)))
	return c, nil
}

// build folds the document keys and groups them by category. Raw keys are visited
// in sorted order so that, when two keys fold to the same name, the first one wins
// deterministically.
func build(raw map[string]document, logger logging.Logger) *Catalog {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	c := Empty()
	for _, k := range keys {
		name := textutils.Fold(k)
		if name == "" {
			continue
		}
		if existing, ok := c.entries[name]; ok {
			logger.Warn("Duplicate ingredient in substitute catalog, keeping first",
				logging.F(logging.FieldIngredient, k),
				logging.F("kept", existing.Name))
			continue
		}

		doc := raw[k]
		category := strings.TrimSpace(doc.Category)
		if category == "" {
			category = models.DefaultCategory
		}
		subs := make([]string, 0, len(doc.Substitutes))
		for _, s := range doc.Substitutes {
			if s = strings.TrimSpace(s); s != "" {
				subs = append(subs, s)
			}
		}

		c.entries[name] = Entry{Name: name, Category: category, Substitutes: subs}
		c.categories[category] = append(c.categories[category], name)
	}

	for _, names := range c.categories {
		sort.Strings(names)
	}
	return c
}

// Len returns the number of ingredients in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Categories returns the category names in alphabetical order.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.categories))
	for cat := range c.categories {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Ingredients returns the ingredient names of category in alphabetical order.
// An unknown category yields an empty list.
func (c *Catalog) Ingredients(category string) []string {
	names := c.categories[strings.TrimSpace(category)]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Lookup finds an ingredient by name, ignoring case and surrounding whitespace.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[textutils.Fold(name)]
	if !ok {
		return Entry{}, false
	}
	subs := make([]string, len(e.Substitutes))
	copy(subs, e.Substitutes)
	e.Substitutes = subs
	return e, true
}

// Entries returns every entry, ordered by category then name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, cat := range c.Categories() {
		for _, name := range c.categories[cat] {
			e, _ := c.Lookup(name)
			out = append(out, e)
		}
	}
	return out
}
