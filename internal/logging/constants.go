package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldRecipe     = "recipe"
	FieldIngredient = "ingredient"
	FieldIndex      = "index"
	FieldKey        = "key"
	FieldCategory   = "category"
	FieldOperation  = "operation"
	FieldFormat     = "format"
	FieldError      = "error"
	FieldCount      = "count"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
