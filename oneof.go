package yamlskema

// oneOfNode accepts a document exactly one of its branches accepts. Every
// branch is evaluated; ambiguity is a failure in its own right, reported per
// succeeding branch rather than through the branches' errors.
type oneOfNode struct {
	items []node
}

func compileOneOf(m map[string]any) (node, *SchemaError) {
	items, err := compileBranches(m, "oneOf")
	if err != nil {
		return nil, err
	}
	return &oneOfNode{items: items}, nil
}

func (n *oneOfNode) validate(ctx *Context, doc any) *ValidationError {
	var errs []*ValidationError
	var valid []int
	for i, item := range n.items {
		if err := item.validate(ctx, doc); err != nil {
			errs = append(errs, err.pushName("oneOf"))
			continue
		}
		valid = append(valid, i)
	}

	switch len(valid) {
	case 1:
		return nil
	case 0:
		return condenseValidationErrors(errs)
	default:
		ambiguous := make([]*ValidationError, 0, len(valid))
		for _, i := range valid {
			ambiguous = append(ambiguous, constraint(CodeOneOfAmbiguous).pushIndex(i))
		}
		return condenseValidationErrors(ambiguous)
	}
}
