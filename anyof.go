package yamlskema

// anyOfNode accepts a document any of its branches accepts. On total failure
// every branch's errors are reported, not just the closest match.
type anyOfNode struct {
	items []node
}

func compileAnyOf(m map[string]any) (node, *SchemaError) {
	items, err := compileBranches(m, "anyOf")
	if err != nil {
		return nil, err
	}
	return &anyOfNode{items: items}, nil
}

func (n *anyOfNode) validate(ctx *Context, doc any) *ValidationError {
	var errs []*ValidationError
	for _, item := range n.items {
		err := item.validate(ctx, doc)
		if err == nil {
			return nil
		}
		errs = append(errs, err.pushName("anyOf"))
	}
	return condenseValidationErrors(errs)
}
