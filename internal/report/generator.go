// Package report renders recipes, shopping lists and substitutes for output.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/recipe-book/internal/catalog"
	"fjacquet/recipe-book/internal/logging"
	"fjacquet/recipe-book/internal/models"
	"fjacquet/recipe-book/internal/shopping"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists every supported output format.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatCSV}
}

// Generator renders domain values in the configured format.
type Generator struct {
	logger    logging.Logger
	delimiter rune
}

// NewGenerator creates a Generator writing comma separated CSV.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Generator{
		logger:    logger,
		delimiter: ',',
	}
}

// SetDelimiter sets the CSV field delimiter.
func (g *Generator) SetDelimiter(delim rune) {
	g.delimiter = delim
}

// Delimiter returns the CSV field delimiter.
func (g *Generator) Delimiter() rune {
	return g.delimiter
}

// WriteRecipes renders full recipes, ingredients included. In CSV each ingredient
// is one row.
func (g *Generator) WriteRecipes(w io.Writer, recipes []models.Recipe, format string) error {
	views := make([]recipeView, len(recipes))
	var rows []ingredientRow
	for i, r := range recipes {
		views[i] = newRecipeView(r)
		for _, ing := range r.Ingredients {
			rows = append(rows, ingredientRow{
				Recipe:     r.Name,
				Ingredient: ing.Name,
				Quantity:   models.FormatDecimal(ing.Quantity),
				Unit:       ing.Unit,
				Calories:   models.FormatDecimal(ing.Calories),
			})
		}
	}
	if rows == nil {
		rows = []ingredientRow{}
	}

	return g.render(w, format, "recipes", views, rows, func(w io.Writer) error {
		for i, r := range recipes {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%s (%s kcal)\n", r.Name, models.FormatDecimal(r.TotalCalories)); err != nil {
				return err
			}
			for _, ing := range r.Ingredients {
				if _, err := fmt.Fprintf(w, "  - %s\n", ing.String()); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// WriteRecipeSummaries renders one line per recipe: name, ingredient count and total.
func (g *Generator) WriteRecipeSummaries(w io.Writer, recipes []models.Recipe, format string) error {
	rows := make([]summaryRow, len(recipes))
	for i, r := range recipes {
		rows[i] = summaryRow{
			Name:          r.Name,
			Ingredients:   len(r.Ingredients),
			TotalCalories: number(r.TotalCalories),
		}
	}

	return g.render(w, format, "recipe summaries", rows, rows, func(w io.Writer) error {
		if len(recipes) == 0 {
			_, err := fmt.Fprintln(w, "No recipes.")
			return err
		}
		for _, r := range recipes {
			if _, err := fmt.Fprintf(w, "%s - %s kcal\n", r.Name, models.FormatDecimal(r.TotalCalories)); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteShoppingList renders every aggregated line in key order.
func (g *Generator) WriteShoppingList(w io.Writer, list *shopping.ShoppingList, format string) error {
	lines := list.Lines()
	rows := make([]shoppingRow, len(lines))
	for i, l := range lines {
		rows[i] = shoppingRow{Item: l.Key, Name: l.Name, Unit: l.Unit, Quantity: number(l.Quantity)}
	}

	return g.render(w, format, "shopping list", rows, rows, func(w io.Writer) error {
		for _, l := range lines {
			if _, err := fmt.Fprintf(w, "%s: %s\n", l.Key, models.FormatDecimal(l.Quantity)); err != nil {
				return err
			}
		}
		return nil
	})
}

// WritePurchase renders the items chosen for purchase.
func (g *Generator) WritePurchase(w io.Writer, items []shopping.PurchaseItem, format string) error {
	rows := make([]purchaseRow, len(items))
	for i, it := range items {
		rows[i] = purchaseRow{Item: it.Name, Quantity: it.Quantity}
	}

	return g.render(w, format, "purchase list", rows, rows, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, "Missing Ingredients:"); err != nil {
			return err
		}
		for _, it := range items {
			if _, err := fmt.Fprintf(w, "- %s: %s\n", it.Name, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSubstitutes renders the substitutes of one catalog entry.
func (g *Generator) WriteSubstitutes(w io.Writer, entry catalog.Entry, format string) error {
	rows := make([]substituteRow, len(entry.Substitutes))
	for i, s := range entry.Substitutes {
		rows[i] = substituteRow{Ingredient: entry.Name, Category: entry.Category, Substitute: s}
	}

	return g.render(w, format, "substitutes", entry, rows, func(w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "Ingredient: %s\n\nSubstitutes:\n", entry.Name)
		for _, s := range entry.Substitutes {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// render dispatches on format. structured is used for JSON and YAML, rows (a slice
// of csv-tagged structs) for CSV, and text for plain output.
func (g *Generator) render(w io.Writer, format, what string, structured, rows interface{}, text func(io.Writer) error) error {
	var err error
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		err = text(w)
	case FormatJSON:
		err = g.writeJSON(w, structured)
	case FormatYAML:
		err = g.writeYAML(w, structured)
	case FormatCSV:
		err = g.writeCSV(w, rows)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		g.logger.WithError(err).Error("Failed to render "+what, logging.F(logging.FieldFormat, format))
		return fmt.Errorf("failed to render %s as %s: %w", what, format, err)
	}
	return nil
}

func (g *Generator) writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (g *Generator) writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (g *Generator) writeCSV(w io.Writer, rows interface{}) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = g.delimiter
	return gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter))
}

// WriteFile creates path (and its directory) and renders into it.
func (g *Generator) WriteFile(path string, render func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing output file: %w", cerr)
		}
	}()

	if err := render(file); err != nil {
		return err
	}
	g.logger.Info("Wrote output file", logging.F(logging.FieldOutputFile, path))
	return nil
}

// number renders a decimal as a bare number in JSON and YAML.
type number decimal.Decimal

func (n number) String() string {
	return decimal.Decimal(n).String()
}

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n number) MarshalYAML() (interface{}, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: n.String()}, nil
}

func (n number) MarshalCSV() (string, error) {
	return n.String(), nil
}

type ingredientView struct {
	Name     string `json:"name" yaml:"name"`
	Quantity number `json:"qty" yaml:"qty"`
	Unit     string `json:"unit" yaml:"unit"`
	Calories number `json:"kcal" yaml:"kcal"`
}

type recipeView struct {
	Name          string           `json:"name" yaml:"name"`
	Ingredients   []ingredientView `json:"ingredients" yaml:"ingredients"`
	TotalCalories number           `json:"total_cal" yaml:"total_cal"`
}

func newRecipeView(r models.Recipe) recipeView {
	ings := make([]ingredientView, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ings[i] = ingredientView{
			Name:     ing.Name,
			Quantity: number(ing.Quantity),
			Unit:     ing.Unit,
			Calories: number(ing.Calories),
		}
	}
	return recipeView{Name: r.Name, Ingredients: ings, TotalCalories: number(r.TotalCalories)}
}

type ingredientRow struct {
	Recipe     string `csv:"recipe"`
	Ingredient string `csv:"ingredient"`
	Quantity   string `csv:"quantity"`
	Unit       string `csv:"unit"`
	Calories   string `csv:"kcal"`
}

type summaryRow struct {
	Name          string `json:"name" yaml:"name" csv:"name"`
	Ingredients   int    `json:"ingredients" yaml:"ingredients" csv:"ingredients"`
	TotalCalories number `json:"total_cal" yaml:"total_cal" csv:"total_cal"`
}

type shoppingRow struct {
	Item     string `json:"item" yaml:"item" csv:"item"`
	Name     string `json:"name" yaml:"name" csv:"name"`
	Unit     string `json:"unit" yaml:"unit" csv:"unit"`
	Quantity number `json:"quantity" yaml:"quantity" csv:"quantity"`
}

type purchaseRow struct {
	Item     string `json:"item" yaml:"item" csv:"item"`
	Quantity string `json:"quantity" yaml:"quantity" csv:"quantity"`
}

type substituteRow struct {
	Ingredient string `csv:"ingredient"`
	Category   string `csv:"category"`
	Substitute string `csv:"substitute"`
}
