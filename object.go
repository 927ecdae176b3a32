package yamlskema

// objectNode validates fixed-shape mappings: a declared name→schema field
// set and an optional required-field list. Undeclared document keys are
// always rejected; declared fields are optional unless listed in required.
type objectNode struct {
	fields map[string]node
	// required is nil when the schema omits the list entirely.
	required []string
}

func compileObject(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, []string{"items"}, []string{"type", "required"}); err != nil {
		return nil, err
	}

	items, ok, err := lookupMap(m, "items")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, schemaFieldMissing("items")
	}

	n := &objectNode{fields: make(map[string]node, len(items))}
	var errs []*SchemaError
	for _, name := range sortedKeys(items) {
		compiled, cerr := compileNode(items[name])
		if cerr != nil {
			errs = append(errs, cerr.pushName(name).pushName("items"))
			continue
		}
		n.fields[name] = compiled
	}
	if err := condenseSchemaErrors(errs); err != nil {
		return nil, err
	}

	if _, ok := lookupAny(m, "required"); ok {
		seq, _, err := lookupSlice(m, "required")
		if err != nil {
			return nil, err
		}
		required := make([]string, 0, len(seq))
		var rerrs []*SchemaError
		for _, entry := range seq {
			name, ok := entry.(string)
			if !ok {
				rerrs = append(rerrs, schemaWrongType("string", kindOf(entry)).pushName("required"))
				continue
			}
			required = append(required, name)
		}
		if err := condenseSchemaErrors(rerrs); err != nil {
			return nil, err
		}
		n.required = required
	}

	return n, nil
}

func (n *objectNode) isRequired(name string) bool {
	for _, req := range n.required {
		if req == name {
			return true
		}
	}
	return false
}

func (n *objectNode) validate(ctx *Context, doc any) *ValidationError {
	if _, ok := doc.(map[string]any); !ok {
		return validationWrongType("hash", kindOf(doc))
	}

	declared := sortedKeys(n.fields)
	var required, optional []string
	if n.required != nil {
		for _, name := range declared {
			if n.isRequired(name) {
				required = append(required, name)
			} else {
				optional = append(optional, name)
			}
		}
	} else {
		optional = declared
	}

	m, err := strictDocContents(doc, required, optional)
	if err != nil {
		return err
	}

	var errs []*ValidationError
	for _, name := range declared {
		value, present := m[name]
		if !present || value == nil {
			// An explicit null counts as missing; strictDocContents only
			// sees key presence.
			if present && n.isRequired(name) {
				errs = append(errs, validationFieldMissing(name).pushName(name))
			}
			continue
		}
		if ferr := n.fields[name].validate(ctx, value); ferr != nil {
			errs = append(errs, ferr.pushName(name))
		}
	}
	return condenseValidationErrors(errs)
}
