// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

// RecipeXPaths holds the XPath expressions of the recipe import document. Paths
// below Recipe are relative to a recipe node; paths below Ingredient are relative
// to an ingredient node.
type RecipeXPaths struct {
	Recipe     string
	RecipeName string
	Ingredient string

	IngredientName string
	Quantity       string
	Unit           string
	Calories       string
}

// DefaultRecipeXPaths returns the XPath expressions for
// <recipes><recipe><name/><ingredient>...</ingredient></recipe></recipes>.
func DefaultRecipeXPaths() RecipeXPaths {
	return RecipeXPaths{
		Recipe:         "/recipes/recipe",
		RecipeName:     "name",
		Ingredient:     "ingredient",
		IngredientName: "name",
		Quantity:       "qty",
		Unit:           "unit",
		Calories:       "kcal",
	}
}
