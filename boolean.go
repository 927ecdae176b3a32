package yamlskema

// booleanNode validates boolean scalars; the kind check is the whole
// contract.
type booleanNode struct{}

func compileBoolean(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, nil, []string{"type"}); err != nil {
		return nil, err
	}
	return booleanNode{}, nil
}

func (booleanNode) validate(_ *Context, doc any) *ValidationError {
	if _, ok := doc.(bool); !ok {
		return validationWrongType("boolean", kindOf(doc))
	}
	return nil
}
