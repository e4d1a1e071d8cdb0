package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// IngredientLine is one ingredient of a recipe: a name, a quantity in a free-text
// unit, and the calories contributed at that quantity. It is a value object.
type IngredientLine struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"qty"`
	Unit     string          `json:"unit"`
	Calories decimal.Decimal `json:"kcal"`
}

// NewIngredientLine builds a line with trimmed name and unit.
func NewIngredientLine(name string, quantity decimal.Decimal, unit string, calories decimal.Decimal) IngredientLine {
	return IngredientLine{
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
		Unit:     strings.TrimSpace(unit),
		Calories: calories,
	}
}

// QuantityToken renders the quantity the way it is typed in, e.g. "200(g)".
func (l IngredientLine) QuantityToken() string {
	return fmt.Sprintf("%s(%s)", FormatDecimal(l.Quantity), l.Unit)
}

// String renders the line for display, e.g. "egg : 2(pcs) - 70 kcal".
func (l IngredientLine) String() string {
	return fmt.Sprintf("%s : %s - %s kcal", l.Name, l.QuantityToken(), FormatDecimal(l.Calories))
}

// Equal compares lines by value; decimals are compared numerically.
func (l IngredientLine) Equal(other IngredientLine) bool {
	return l.Name == other.Name &&
		l.Unit == other.Unit &&
		l.Quantity.Equal(other.Quantity) &&
		l.Calories.Equal(other.Calories)
}

type ingredientDocument struct {
	Name string          `json:"name"`
	Qty  json.RawMessage `json:"qty,omitempty"`
	Unit string          `json:"unit"`
	Kcal json.RawMessage `json:"kcal,omitempty"`
}

// MarshalJSON writes qty and kcal as JSON numbers.
func (l IngredientLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string      `json:"name"`
		Qty  json.Number `json:"qty"`
		Unit string      `json:"unit"`
		Kcal json.Number `json:"kcal"`
	}{
		Name: l.Name,
		Qty:  jsonNumber(l.Quantity),
		Unit: l.Unit,
		Kcal: jsonNumber(l.Calories),
	})
}

// UnmarshalJSON reads a stored line. Stored data may have been edited by hand, so a
// missing or non-numeric qty or kcal reads as zero instead of failing the document.
func (l *IngredientLine) UnmarshalJSON(data []byte) error {
	var doc ingredientDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	qty, _ := lenientDecimal(doc.Qty)
	kcal, _ := lenientDecimal(doc.Kcal)
	*l = NewIngredientLine(doc.Name, qty, doc.Unit, kcal)
	return nil
}

// IngredientSet is the result of parsing an ingredient form: the ordered lines and
// the calorie total accumulated while parsing them.
type IngredientSet struct {
	Lines         []IngredientLine
	TotalCalories decimal.Decimal
}

// Len returns the number of lines.
func (s IngredientSet) Len() int {
	return len(s.Lines)
}
