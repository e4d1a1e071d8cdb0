// Package ingredientparser turns the three delimited ingredient fields of a recipe
// form into validated ingredient lines.
//
// The first malformed token aborts the whole parse; there is no partial result.
package ingredientparser

import (
	"regexp"
	"strings"

	"fjacquet/recipe-book/internal/models"
	"fjacquet/recipe-book/internal/parsererror"
	"fjacquet/recipe-book/internal/textutils"

	"github.com/shopspring/decimal"
)

// quantityPattern matches "200(g)", " 2 (pcs) ", "0.5()" or ".5(l)".
var quantityPattern = regexp.MustCompile(`^\s*(\d+\.?\d*|\.\d+)\s*\((.*?)\)\s*$`)

// Parse converts the names, quantities and calories fields into an ingredient set.
// Each field is split on ";", trimmed, and empty pieces are dropped. Three empty
// fields give an empty set without error; rejecting it is up to the caller.
func Parse(namesRaw, quantitiesRaw, caloriesRaw string) (models.IngredientSet, error) {
	names := textutils.SplitTrimmed(namesRaw, models.IngredientSeparator)
	qtys := textutils.SplitTrimmed(quantitiesRaw, models.IngredientSeparator)
	cals := textutils.SplitTrimmed(caloriesRaw, models.IngredientSeparator)

	if len(names) != len(qtys) || len(qtys) != len(cals) {
		return models.IngredientSet{}, &parsererror.CountMismatchError{
			Names:      len(names),
			Quantities: len(qtys),
			Calories:   len(cals),
		}
	}

	lines := make([]models.IngredientLine, 0, len(names))
	total := decimal.Zero

	for i, name := range names {
		qty, unit, err := ParseQuantity(qtys[i])
		if err != nil {
			return models.IngredientSet{}, err
		}

		kcal, err := ParseCalories(cals[i])
		if err != nil {
			return models.IngredientSet{}, err
		}

		lines = append(lines, models.NewIngredientLine(name, qty, unit, kcal))
		total = total.Add(kcal)
	}

	return models.IngredientSet{Lines: lines, TotalCalories: total}, nil
}

// ParseQuantity parses one quantity token such as "200(g)" into its amount and unit.
func ParseQuantity(token string) (decimal.Decimal, string, error) {
	match := quantityPattern.FindStringSubmatch(token)
	if match == nil {
		return decimal.Zero, "", &parsererror.InvalidQuantityFormatError{Token: token}
	}

	qty, err := decimal.NewFromString(match[1])
	if err != nil {
		return decimal.Zero, "", &parsererror.InvalidQuantityFormatError{Token: token}
	}
	return qty, strings.TrimSpace(match[2]), nil
}

// ParseCalories parses one calorie token.
func ParseCalories(token string) (decimal.Decimal, error) {
	kcal, err := models.ParseDecimal(token)
	if err != nil {
		return decimal.Zero, &parsererror.InvalidCalorieError{Token: token, Err: err}
	}
	return kcal, nil
}

// ParseRecipe parses a full recipe form. On top of Parse it rejects an empty name
// and a recipe without ingredients.
func ParseRecipe(name, namesRaw, quantitiesRaw, caloriesRaw string) (models.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Recipe{}, parsererror.ErrEmptyRecipeName
	}

	set, err := Parse(namesRaw, quantitiesRaw, caloriesRaw)
	if err != nil {
		return models.Recipe{}, err
	}
	if set.Len() == 0 {
		return models.Recipe{}, parsererror.ErrNoIngredients
	}

	return models.NewRecipeFromSet(name, set), nil
}

// Fields holds a recipe rendered back into the three form fields.
type Fields struct {
	Name       string
	Names      string
	Quantities string
	Calories   string
}

// Format renders a recipe into form fields that Parse accepts unchanged.
func Format(r models.Recipe) Fields {
	names := make([]string, len(r.Ingredients))
	qtys := make([]string, len(r.Ingredients))
	cals := make([]string, len(r.Ingredients))

	for i, ing := range r.Ingredients {
		names[i] = ing.Name
		qtys[i] = ing.QuantityToken()
		cals[i] = models.FormatDecimal(ing.Calories)
	}

	return Fields{
		Name:       r.Name,
		Names:      strings.Join(names, models.DisplaySeparator),
		Quantities: strings.Join(qtys, models.DisplaySeparator),
		Calories:   strings.Join(cals, models.DisplaySeparator),
	}
}
