package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Recipe is a named, ordered list of ingredients. TotalCalories always equals the
// sum of the ingredients' calories: every constructor re-derives it.
type Recipe struct {
	Name          string           `json:"name"`
	Ingredients   []IngredientLine `json:"ingredients"`
	TotalCalories decimal.Decimal  `json:"total_cal"`
}

// NewRecipe creates a recipe with a trimmed name and a derived calorie total.
func NewRecipe(name string, lines []IngredientLine) Recipe {
	ingredients := make([]IngredientLine, len(lines))
	copy(ingredients, lines)
	return Recipe{
		Name:          strings.TrimSpace(name),
		Ingredients:   ingredients,
		TotalCalories: SumCalories(ingredients),
	}
}

// NewRecipeFromSet creates a recipe from a parsed ingredient set.
func NewRecipeFromSet(name string, set IngredientSet) Recipe {
	return NewRecipe(name, set.Lines)
}

// Clone returns a deep copy of r.
func (r Recipe) Clone() Recipe {
	return Recipe{
		Name:          r.Name,
		Ingredients:   append([]IngredientLine(nil), r.Ingredients...),
		TotalCalories: r.TotalCalories,
	}
}

// Equal compares recipes by value.
func (r Recipe) Equal(other Recipe) bool {
	if r.Name != other.Name || len(r.Ingredients) != len(other.Ingredients) {
		return false
	}
	if !r.TotalCalories.Equal(other.TotalCalories) {
		return false
	}
	for i := range r.Ingredients {
		if !r.Ingredients[i].Equal(other.Ingredients[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON writes total_cal as a JSON number and never writes a null ingredient list.
func (r Recipe) MarshalJSON() ([]byte, error) {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []IngredientLine{}
	}
	return json.Marshal(struct {
		Name        string           `json:"name"`
		Ingredients []IngredientLine `json:"ingredients"`
		TotalCal    json.Number      `json:"total_cal"`
	}{
		Name:        r.Name,
		Ingredients: ingredients,
		TotalCal:    jsonNumber(r.TotalCalories),
	})
}

// UnmarshalJSON reads a stored recipe as written. StoredTotal and the derived total
// may differ for hand-edited documents; callers reconcile with Reconcile.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	var doc struct {
		Name        string           `json:"name"`
		Ingredients []IngredientLine `json:"ingredients"`
		TotalCal    json.RawMessage  `json:"total_cal"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	total, _ := lenientDecimal(doc.TotalCal)
	if doc.Ingredients == nil {
		doc.Ingredients = []IngredientLine{}
	}
	*r = Recipe{
		Name:          strings.TrimSpace(doc.Name),
		Ingredients:   doc.Ingredients,
		TotalCalories: total,
	}
	return nil
}

// Reconcile re-derives the calorie total. It reports whether the stored total
// disagreed with the ingredients.
func (r Recipe) Reconcile() (Recipe, bool) {
	derived := SumCalories(r.Ingredients)
	if derived.Equal(r.TotalCalories) {
		return r, false
	}
	r.TotalCalories = derived
	return r, true
}
