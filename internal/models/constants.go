package models

// Default document names and catalog values.
const (
	DefaultRecipesFile     = "recipes.json"
	DefaultSubstitutesFile = "substitutes.json"
	DefaultCategory        = "Others"

	// IngredientSeparator separates entries in the three ingredient form fields.
	IngredientSeparator = ";"
	// DisplaySeparator joins entries when a recipe is rendered back into form fields.
	DisplaySeparator = " ; "
)
