package yamlskema

// Schema is a single compiled top-level schema: a URI plus one root node.
type Schema struct {
	uri  string
	root node
}

// URI returns the identifier the schema was registered under.
func (s *Schema) URI() string { return s.uri }

// Validate checks a document tree against the schema. References inside the
// schema resolve through ctx at call time. The returned error, when non-nil,
// is a *ValidationError tree.
func (s *Schema) Validate(ctx *Context, doc any) error {
	if err := s.root.validate(ctx, doc); err != nil {
		return err
	}
	return nil
}

// ParseSchema compiles one schema document: a mapping with exactly the keys
// "uri" (string) and "schema" (a schema node). The returned error, when
// non-nil, is a *SchemaError tree.
func ParseSchema(doc any) (*Schema, error) {
	schema, err := parseSchema(doc)
	if err != nil {
		return nil, err
	}
	return schema, nil
}

func parseSchema(doc any) (*Schema, *SchemaError) {
	m, err := strictContents(doc, []string{"uri", "schema"}, nil)
	if err != nil {
		return nil, err
	}

	uri, ok, err := lookupString(m, "uri")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, schemaFieldMissing("uri")
	}

	inner, ok := lookupAny(m, "schema")
	if !ok {
		return nil, schemaFieldMissing("schema")
	}
	root, err := compileNode(inner)
	if err != nil {
		// Compile errors below the root carry the schema's URI so reports
		// over many documents stay attributable.
		return nil, err.pushName(uri)
	}

	return &Schema{uri: uri, root: root}, nil
}

// Context is the read-only registry of compiled schemas, keyed by URI.
// Build it once; afterwards it is safe for concurrent use by any number of
// validations.
type Context struct {
	schemas map[string]*Schema
}

// NewContext compiles every schema document and registers the results.
// All documents are attempted; every compile failure is aggregated into the
// returned error. Duplicate URIs resolve last-write-wins.
func NewContext(docs ...any) (*Context, error) {
	ctx := &Context{schemas: make(map[string]*Schema, len(docs))}
	var errs []*SchemaError
	for _, doc := range docs {
		schema, err := parseSchema(doc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ctx.schemas[schema.uri] = schema
	}
	if err := condenseSchemaErrors(errs); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Schema looks up a registered schema by URI.
func (c *Context) Schema(uri string) (*Schema, bool) {
	if c == nil {
		return nil, false
	}
	schema, ok := c.schemas[uri]
	return schema, ok
}
