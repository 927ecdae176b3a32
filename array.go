package yamlskema

import "reflect"

// arrayNode validates sequences: cardinality, element uniqueness, a contains
// quota and a uniform element schema.
type arrayNode struct {
	items       node
	minItems    *int
	maxItems    *int
	uniqueItems bool
	contains    node
	minContains *int
	maxContains *int
}

func compileArray(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, nil, []string{
		"type", "items", "minItems", "maxItems", "uniqueItems",
		"contains", "minContains", "maxContains",
	}); err != nil {
		return nil, err
	}

	n := &arrayNode{}
	if count, ok, err := lookupCount(m, "minItems"); err != nil {
		return nil, err
	} else if ok {
		n.minItems = &count
	}
	if count, ok, err := lookupCount(m, "maxItems"); err != nil {
		return nil, err
	} else if ok {
		n.maxItems = &count
	}
	if n.minItems != nil && n.maxItems != nil && *n.minItems > *n.maxItems {
		return nil, schemaMalformed("minItems cannot be greater than maxItems")
	}

	if unique, ok, err := lookupBool(m, "uniqueItems"); err != nil {
		return nil, err
	} else if ok {
		n.uniqueItems = unique
	}

	if items, ok := lookupAny(m, "items"); ok {
		compiled, err := compileNode(items)
		if err != nil {
			return nil, err.pushName("items")
		}
		n.items = compiled
	}

	if contains, ok := lookupAny(m, "contains"); ok {
		compiled, err := compileNode(contains)
		if err != nil {
			return nil, err.pushName("contains")
		}
		n.contains = compiled
	}
	if count, ok, err := lookupCount(m, "minContains"); err != nil {
		return nil, err
	} else if ok {
		n.minContains = &count
	}
	if count, ok, err := lookupCount(m, "maxContains"); err != nil {
		return nil, err
	} else if ok {
		n.maxContains = &count
	}

	switch {
	case n.contains == nil && n.minContains != nil && n.maxContains != nil:
		return nil, schemaMalformed("minContains and maxContains requires 'contains' to specify a schema to validate against")
	case n.contains == nil && n.minContains != nil:
		return nil, schemaMalformed("minContains requires 'contains' to specify a schema to validate against")
	case n.contains == nil && n.maxContains != nil:
		return nil, schemaMalformed("maxContains requires 'contains' to specify a schema to validate against")
	case n.minContains != nil && n.maxContains != nil && *n.minContains > *n.maxContains:
		return nil, schemaMalformed("minContains cannot be greater than maxContains")
	}

	return n, nil
}

func (n *arrayNode) validate(ctx *Context, doc any) *ValidationError {
	items, ok := doc.([]any)
	if !ok {
		return validationWrongType("array", kindOf(doc))
	}

	if n.minItems != nil && len(items) < *n.minItems {
		return constraint(CodeMinItems)
	}
	if n.maxItems != nil && len(items) > *n.maxItems {
		return constraint(CodeMaxItems)
	}

	if n.uniqueItems {
		for i, item := range items {
			for _, seen := range items[:i] {
				if reflect.DeepEqual(item, seen) {
					return constraint(CodeDuplicateItem).pushIndex(i)
				}
			}
		}
	}

	if n.contains != nil {
		contained := 0
		for _, item := range items {
			if n.contains.validate(ctx, item) == nil {
				contained++
			}
		}
		if n.minContains != nil {
			if contained < *n.minContains {
				return constraint(CodeMinContains)
			}
		} else if contained < 1 {
			return constraint(CodeContainsNone)
		}
		if n.maxContains != nil && contained > *n.maxContains {
			return constraint(CodeMaxContains)
		}
	}

	if n.items != nil {
		var errs []*ValidationError
		for i, item := range items {
			if err := n.items.validate(ctx, item); err != nil {
				errs = append(errs, err.pushIndex(i))
			}
		}
		if err := condenseValidationErrors(errs); err != nil {
			return err
		}
	}

	return nil
}
