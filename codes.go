package yamlskema

// Error codes (exported consts for IDE completion and type safety by convention).
//
// The first group appears in both schema-compilation and document-validation
// errors; the constraint group only ever appears at validation time.
const (
	CodeWrongType      = "wrong_type"
	CodeFieldMissing   = "field_missing"
	CodeExtraField     = "extra_field"
	CodeUnknownType    = "unknown_type"
	CodeMalformedField = "malformed_field"
	CodeUnknownSchema  = "unknown_schema"
	CodeMultiple       = "multiple"

	// Constraint violations (validation only)
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodePattern        = "pattern"
	CodeLowerLimit     = "lower_limit"
	CodeUpperLimit     = "upper_limit"
	CodeMultipleOf     = "multiple_of"
	CodeMinItems       = "min_items"
	CodeMaxItems       = "max_items"
	CodeDuplicateItem  = "duplicate_item"
	CodeMinContains    = "min_contains"
	CodeMaxContains    = "max_contains"
	CodeContainsNone   = "contains_none"
	CodeInversion      = "inversion"
	CodeOneOfAmbiguous = "one_of_ambiguous"
)
