package yamlskema

import (
	"strings"

	"github.com/reoring/yamlskema/i18n"
)

// ValidationError reports a document that does not satisfy a schema. Like
// SchemaError it is a tree whose CodeMultiple nodes aggregate sibling
// failures, but the two taxonomies never mix: a ValidationError only ever
// refers to positions in the document, never in the schema text.
type ValidationError struct {
	Code string
	Path Breadcrumb
	Data map[string]string
	// Causes is populated only when Code is CodeMultiple.
	Causes []*ValidationError
}

func newValidationError(code string, data map[string]string) *ValidationError {
	return &ValidationError{Code: code, Data: data}
}

func validationWrongType(expected, actual string) *ValidationError {
	return newValidationError(CodeWrongType, map[string]string{"expected": expected, "actual": actual})
}

func validationFieldMissing(field string) *ValidationError {
	return newValidationError(CodeFieldMissing, map[string]string{"field": field})
}

func validationExtraField(field string) *ValidationError {
	return newValidationError(CodeExtraField, map[string]string{"field": field})
}

func validationUnknownSchema(uri string) *ValidationError {
	return newValidationError(CodeUnknownSchema, map[string]string{"uri": uri})
}

// constraint builds a leaf for a violated per-type constraint; the code alone
// selects the message.
func constraint(code string) *ValidationError {
	return newValidationError(code, nil)
}

func condenseValidationErrors(errs []*ValidationError) *ValidationError {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &ValidationError{Code: CodeMultiple, Causes: errs}
	}
}

func (e *ValidationError) pushName(name string) *ValidationError {
	if e != nil {
		e.Path.Push(NameSegment(name))
	}
	return e
}

func (e *ValidationError) pushIndex(index int) *ValidationError {
	if e != nil {
		e.Path.Push(IndexSegment(index))
	}
	return e
}

// Message returns the localized single-line message for a leaf error.
func (e *ValidationError) Message() string {
	return i18n.T(e.Code, e.Data)
}

// Error renders the whole tree, one "#<path>: <message>" line per leaf, in
// depth-first order.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	e.flatten(&sb, "#")
	return sb.String()
}

func (e *ValidationError) flatten(sb *strings.Builder, root string) {
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
