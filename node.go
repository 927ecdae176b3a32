package yamlskema

// node is one compiled unit of a schema tree: exactly one type or combinator.
// The set of implementations is closed; compileNode is the only constructor.
type node interface {
	validate(ctx *Context, doc any) *ValidationError
}

// typeCompilers dispatches the "type" keyword to a per-kind compiler. Every
// compiler re-checks its own structural contract before reading fields.
var typeCompilers map[string]func(map[string]any) (node, *SchemaError)

func init() {
	typeCompilers = map[string]func(map[string]any) (node, *SchemaError){
		"object":  compileObject,
		"array":   compileArray,
		"hash":    compileHash,
		"string":  compileString,
		"integer": compileInteger,
		"real":    compileReal,
		"boolean": compileBoolean,
	}
}

// compileNode turns one schema-authoring mapping into a node. Reference and
// combinator keywords take precedence over "type"; a mapping with neither is
// missing its "type" field.
func compileNode(v any) (node, *SchemaError) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schemaWrongType("hash", kindOf(v))
	}

	if _, ok := m["$ref"]; ok {
		return compileReference(m)
	}
	if _, ok := m["not"]; ok {
		return compileNot(m)
	}
	if _, ok := m["oneOf"]; ok {
		return compileOneOf(m)
	}
	if _, ok := m["allOf"]; ok {
		return compileAllOf(m)
	}
	if _, ok := m["anyOf"]; ok {
		return compileAnyOf(m)
	}

	typename, ok, err := lookupString(m, "type")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, schemaFieldMissing("type")
	}
	compile, ok := typeCompilers[typename]
	if !ok {
		return nil, schemaUnknownType(typename)
	}
	return compile(m)
}

// compileBranches reads a combinator keyword's child list. Child compile
// failures aggregate; an empty list is malformed.
func compileBranches(m map[string]any, keyword string) ([]node, *SchemaError) {
	if _, err := strictContents(m, []string{keyword}, nil); err != nil {
		return nil, err
	}
	seq, ok, err := lookupSlice(m, keyword)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, schemaFieldMissing(keyword)
	}

	items := make([]node, 0, len(seq))
	var errs []*SchemaError
	for _, child := range seq {
		compiled, cerr := compileNode(child)
		if cerr != nil {
			errs = append(errs, cerr.pushName("items"))
			continue
		}
		items = append(items, compiled)
	}
	if err := condenseSchemaErrors(errs); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, schemaMalformed(keyword + " modifier requires an array of schemas to validate against").pushName(keyword)
	}
	return items, nil
}
