package yamlskema_test

import (
	"strings"
	"testing"

	yamlskema "github.com/reoring/yamlskema"
	"github.com/reoring/yamlskema/source/yamlsource"
)

func loadDoc(t *testing.T, src string) any {
	t.Helper()
	doc, err := yamlsource.LoadOne([]byte(src))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return doc
}

func buildContext(t *testing.T, src string) *yamlskema.Context {
	t.Helper()
	docs, err := yamlsource.Load([]byte(src))
	if err != nil {
		t.Fatalf("loading schema fixture: %v", err)
	}
	ctx, err := yamlskema.NewContext(docs...)
	if err != nil {
		t.Fatalf("building context: %v", err)
	}
	return ctx
}

// validateOne compiles a single-schema context under the uri "test" and
// validates the document against it, returning the validation outcome.
func validateOne(t *testing.T, schema, document string) error {
	t.Helper()
	ctx := buildContext(t, "uri: test\nschema:\n"+indent(schema))
	compiled, ok := ctx.Schema("test")
	if !ok {
		t.Fatalf("schema %q not registered", "test")
	}
	return compiled.Validate(ctx, loadDoc(t, document))
}

func indent(src string) string {
	return "  " + strings.ReplaceAll(strings.TrimRight(src, "\n"), "\n", "\n  ") + "\n"
}
