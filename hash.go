package yamlskema

// hashNode validates open-ended string-keyed maps: any keys, an optional
// uniform value schema.
type hashNode struct {
	items node
}

func compileHash(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, nil, []string{"type", "items"}); err != nil {
		return nil, err
	}

	n := &hashNode{}
	if items, ok := lookupAny(m, "items"); ok {
		if _, ok := items.(map[string]any); !ok {
			return nil, schemaWrongType("hash", kindOf(items)).pushName("items")
		}
		compiled, err := compileNode(items)
		if err != nil {
			return nil, err.pushName("items")
		}
		n.items = compiled
	}
	return n, nil
}

// validate checks every entry in sorted-key order so entry indices in error
// paths are deterministic; all failures aggregate.
func (n *hashNode) validate(ctx *Context, doc any) *ValidationError {
	m, ok := doc.(map[string]any)
	if !ok {
		return validationWrongType("hash", kindOf(doc))
	}
	if n.items == nil {
		return nil
	}

	var errs []*ValidationError
	for i, key := range sortedKeys(m) {
		if err := n.items.validate(ctx, m[key]); err != nil {
			errs = append(errs, err.pushIndex(i))
		}
	}
	return condenseValidationErrors(errs)
}
