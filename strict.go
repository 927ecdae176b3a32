package yamlskema

import "sort"

// kindOf names the document kind of a generic tree node the way error
// messages spell it. Anything outside the loader contract is "bad_value".
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "real"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "hash"
	default:
		return "bad_value"
	}
}

// splitContents computes the structural-contract sets for a mapping: required
// keys that are absent (in required order) and present keys that are neither
// required nor optional (sorted).
func splitContents(m map[string]any, required, optional []string) (missing, extra []string) {
	for _, key := range required {
		if _, ok := m[key]; !ok {
			missing = append(missing, key)
		}
	}

	allowed := make(map[string]struct{}, len(required)+len(optional))
	for _, key := range required {
		allowed[key] = struct{}{}
	}
	for _, key := range optional {
		allowed[key] = struct{}{}
	}
	for key := range m {
		if _, ok := allowed[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return missing, extra
}

// strictContents enforces the structural contract on a schema-authoring
// mapping: every required key present, no keys outside required+optional.
// All missing and extra keys are reported, not just the first.
func strictContents(v any, required, optional []string) (map[string]any, *SchemaError) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schemaWrongType("hash", kindOf(v))
	}

	missing, extra := splitContents(m, required, optional)
	errs := make([]*SchemaError, 0, len(missing)+len(extra))
	for _, key := range missing {
		errs = append(errs, schemaFieldMissing(key))
	}
	for _, key := range extra {
		errs = append(errs, schemaExtraField(key))
	}
	if err := condenseSchemaErrors(errs); err != nil {
		return nil, err
	}
	return m, nil
}

// strictDocContents is strictContents against a document mapping, reporting
// through the validation taxonomy instead of the schema one.
func strictDocContents(v any, required, optional []string) (map[string]any, *ValidationError) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, validationWrongType("hash", kindOf(v))
	}

	missing, extra := splitContents(m, required, optional)
	errs := make([]*ValidationError, 0, len(missing)+len(extra))
	for _, key := range missing {
		errs = append(errs, validationFieldMissing(key))
	}
	for _, key := range extra {
		errs = append(errs, validationExtraField(key))
	}
	if err := condenseValidationErrors(errs); err != nil {
		return nil, err
	}
	return m, nil
}

// sortedKeys returns the mapping's keys in sorted order so traversal (and
// therefore error reports) is deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// The lookup helpers below read one field out of a schema-authoring mapping.
// An absent field and an explicit null are both "not present"; a present
// field of the wrong kind is a WrongType error carrying the field name.

func lookupAny(m map[string]any, field string) (any, bool) {
	v, ok := m[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func lookupString(m map[string]any, field string) (string, bool, *SchemaError) {
	v, ok := lookupAny(m, field)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, schemaWrongType("string", kindOf(v)).pushName(field)
	}
	return s, true, nil
}

func lookupInt(m map[string]any, field string) (int64, bool, *SchemaError) {
	v, ok := lookupAny(m, field)
	if !ok {
		return 0, false, nil
	}
	i, ok := v.(int64)
	if !ok {
		return 0, false, schemaWrongType("integer", kindOf(v)).pushName(field)
	}
	return i, true, nil
}

// lookupFloat widens integer scalars so real-typed constraints can be written
// without a trailing ".0".
func lookupFloat(m map[string]any, field string) (float64, bool, *SchemaError) {
	v, ok := lookupAny(m, field)
	if !ok {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		return n, true, nil
	case int64:
		return float64(n), true, nil
	default:
		return 0, false, schemaWrongType("real", kindOf(v)).pushName(field)
	}
}

func lookupBool(m map[string]any, field string) (bool, bool, *SchemaError) {
	v, ok := lookupAny(m, field)
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, schemaWrongType("boolean", kindOf(v)).pushName(field)
	}
	return b, true, nil
}

func lookupSlice(m map[string]any, field string) ([]any, bool, *SchemaError) {
	v, ok := lookupAny(m, field)
	if !ok {
		return nil, false, nil
	}
	s, ok := v.([]any)
	if !ok {
		return nil, false, schemaWrongType("array", kindOf(v)).pushName(field)
	}
	return s, true, nil
}

func lookupMap(m map[string]any, field string) (map[string]any, bool, *SchemaError) {
	v, ok := lookupAny(m, field)
	if !ok {
		return nil, false, nil
	}
	inner, ok := v.(map[string]any)
	if !ok {
		return nil, false, schemaWrongType("hash", kindOf(v)).pushName(field)
	}
	return inner, true, nil
}

// lookupCount reads a non-negative integer (lengths, cardinalities, contains
// counts).
func lookupCount(m map[string]any, field string) (int, bool, *SchemaError) {
	i, ok, err := lookupInt(m, field)
	if err != nil || !ok {
		return 0, ok, err
	}
	if i < 0 {
		return 0, false, schemaMalformed("value must be a non-negative integer").pushName(field)
	}
	return int(i), true, nil
}
