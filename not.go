package yamlskema

// notNode inverts its child's verdict. The child's own errors are discarded;
// only the inversion outcome is reported.
type notNode struct {
	item node
}

func compileNot(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, []string{"not"}, nil); err != nil {
		return nil, err
	}
	inner, ok := lookupAny(m, "not")
	if !ok {
		return nil, schemaFieldMissing("not")
	}
	if _, ok := inner.(map[string]any); !ok {
		return nil, schemaWrongType("hash", kindOf(inner)).pushName("not")
	}
	compiled, err := compileNode(inner)
	if err != nil {
		return nil, err.pushName("not")
	}
	return &notNode{item: compiled}, nil
}

func (n *notNode) validate(ctx *Context, doc any) *ValidationError {
	if n.item.validate(ctx, doc) != nil {
		return nil
	}
	return constraint(CodeInversion)
}
