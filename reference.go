package yamlskema

// referenceNode defers to another schema in the Context by URI. Resolution
// happens per validation call, never at compile time, which is what makes
// recursive and mutually-recursive schemas representable without cycles in
// the compiled tree.
type referenceNode struct {
	uri string
}

func compileReference(m map[string]any) (node, *SchemaError) {
	if _, err := strictContents(m, []string{"$ref"}, nil); err != nil {
		return nil, err
	}
	uri, ok, err := lookupString(m, "$ref")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, schemaFieldMissing("$ref")
	}
	return &referenceNode{uri: uri}, nil
}

func (n *referenceNode) validate(ctx *Context, doc any) *ValidationError {
	schema, ok := ctx.Schema(n.uri)
	if !ok {
		return validationUnknownSchema(n.uri)
	}
	return schema.root.validate(ctx, doc)
}
