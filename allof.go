package yamlskema

// allOfNode accepts a document every branch accepts; failing branches'
// errors aggregate.
type allOfNode struct {
	items []node
}

func compileAllOf(m map[string]any) (node, *SchemaError) {
	items, err := compileBranches(m, "allOf")
	if err != nil {
		return nil, err
	}
	return &allOfNode{items: items}, nil
}

func (n *allOfNode) validate(ctx *Context, doc any) *ValidationError {
	var errs []*ValidationError
	for _, item := range n.items {
		if err := item.validate(ctx, doc); err != nil {
			errs = append(errs, err)
		}
	}
	return condenseValidationErrors(errs)
}
