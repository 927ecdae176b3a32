package yamlskema

import "math"

// realNode validates real scalars against optional bounds and multipleOf.
// Integers never pass; the subtypes stay distinct in both directions.
type realNode struct {
	bounds bounds[float64]
}

func compileReal(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, nil, integerConstraintFields); err != nil {
		return nil, err
	}
	// For reals any positive span holds a value, so the exclusive/exclusive
	// unit is the smallest representable positive float.
	b, err := compileBounds(m, lookupFloat, math.SmallestNonzeroFloat64)
	if err != nil {
		return nil, err
	}
	return &realNode{bounds: b}, nil
}

func (n *realNode) validate(_ *Context, doc any) *ValidationError {
	value, ok := doc.(float64)
	if !ok {
		return validationWrongType("real", kindOf(doc))
	}
	return n.bounds.check(value)
}
