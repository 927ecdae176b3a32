package yamlskema

import (
	"strings"

	"github.com/reoring/yamlskema/i18n"
)

// SchemaError reports a failure while compiling schema documents into a
// Context. It forms a tree: CodeMultiple nodes aggregate independent sibling
// failures, every other code is a leaf.
type SchemaError struct {
	Code string
	Path Breadcrumb
	Data map[string]string
	// Causes is populated only when Code is CodeMultiple.
	Causes []*SchemaError
}

func newSchemaError(code string, data map[string]string) *SchemaError {
	return &SchemaError{Code: code, Data: data}
}

func schemaWrongType(expected, actual string) *SchemaError {
	return newSchemaError(CodeWrongType, map[string]string{"expected": expected, "actual": actual})
}

func schemaFieldMissing(field string) *SchemaError {
	return newSchemaError(CodeFieldMissing, map[string]string{"field": field})
}

func schemaExtraField(field string) *SchemaError {
	return newSchemaError(CodeExtraField, map[string]string{"field": field})
}

func schemaUnknownType(typename string) *SchemaError {
	return newSchemaError(CodeUnknownType, map[string]string{"type": typename})
}

func schemaMalformed(detail string) *SchemaError {
	return newSchemaError(CodeMalformedField, map[string]string{"error": detail})
}

// condenseSchemaErrors folds independent sibling failures: none is success,
// one passes through untouched, several wrap into a CodeMultiple node.
func condenseSchemaErrors(errs []*SchemaError) *SchemaError {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &SchemaError{Code: CodeMultiple, Causes: errs}
	}
}

// pushName records that the error crossed a named containment boundary on its
// way up. Safe on nil so call sites can chain unconditionally.
func (e *SchemaError) pushName(name string) *SchemaError {
	if e != nil {
		e.Path.Push(NameSegment(name))
	}
	return e
}

// pushIndex is pushName for sequence/hash element boundaries.
func (e *SchemaError) pushIndex(index int) *SchemaError {
	if e != nil {
		e.Path.Push(IndexSegment(index))
	}
	return e
}

// Message returns the localized single-line message for a leaf error.
func (e *SchemaError) Message() string {
	return i18n.T(e.Code, e.Data)
}

// Error renders the whole tree, one "#<path>: <message>" line per leaf, in
// depth-first order.
func (e *SchemaError) Error() string {
	var sb strings.Builder
	e.flatten(&sb, "#")
	return sb.String()
}

func (e *SchemaError) flatten(sb *strings.Builder, root string) {
	if e.Code == CodeMultiple {
		prefix := root + e.Path.String()
		for _, cause := range e.Causes {
			cause.flatten(sb, prefix)
		}
		return
	}
	sb.WriteString(root)
	sb.WriteString(e.Path.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message())
	sb.WriteByte('\n')
}
