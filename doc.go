package yamlskema

// Package yamlskema provides:
//
// - A schema-description language for YAML/JSON document trees, compiled into
//   an immutable Context of cross-referencing schemas keyed by URI
// - Recursive validation with exhaustive error aggregation: every sibling
//   failure is reported, annotated with the exact path to the offending node
// - Logical combinators (not/oneOf/anyOf/allOf) and per-type constraints for
//   strings, integers, reals, booleans, arrays, hashes and objects
// - A stable error model via breadcrumbed error trees (code, path, message)
//
// Design policy:
// - Keep only the public API and the node compilers in the root package; put
//   document loaders under source/ and the CLI under cmd/yamlskema.
// - Error text is produced through the i18n catalog so the wire format stays
//   bit-exact for existing consumers.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	docs, err := yamlsource.Load(schemaText)
//	ctx, err := yamlskema.NewContext(docs...)
//	schema, ok := ctx.Schema("phonebook")
//	err = schema.Validate(ctx, document)
