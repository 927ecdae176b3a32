package yamlskema

// integerNode validates integer scalars against optional bounds and
// multipleOf. Reals never pass, even when integral.
type integerNode struct {
	bounds bounds[int64]
}

var integerConstraintFields = []string{
	"type", "minimum", "exclusiveMinimum", "maximum", "exclusiveMaximum", "multipleOf",
}

func compileInteger(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, nil, integerConstraintFields); err != nil {
		return nil, err
	}
	// An exclusive/exclusive integer span needs a whole integer strictly
	// inside it, so the unit step is 1.
	b, err := compileBounds(m, lookupInt, int64(1))
	if err != nil {
		return nil, err
	}
	return &integerNode{bounds: b}, nil
}

func (n *integerNode) validate(_ *Context, doc any) *ValidationError {
	value, ok := doc.(int64)
	if !ok {
		return validationWrongType("integer", kindOf(doc))
	}
	return n.bounds.check(value)
}
