package yamlskema_test

import (
	"testing"

	yamlskema "github.com/reoring/yamlskema"
)

func parseErr(t *testing.T, src string) string {
	t.Helper()
	_, err := yamlskema.ParseSchema(loadDoc(t, src))
	if err == nil {
		t.Fatalf("schema compiled, want failure:\n%s", src)
	}
	return err.Error()
}

func TestParseSchemaReportsAllMissingFields(t *testing.T) {
	got := parseErr(t, "title: not a schema\n")
	want := "#: missing field, 'uri' not found\n" +
		"#: missing field, 'schema' not found\n" +
		"#: field 'title' is not specified in the schema\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestParseSchemaRejectsExtraField(t *testing.T) {
	got := parseErr(t, `
uri: test
schema:
  type: boolean
description: extra keys are rejected
`)
	want := "#: field 'description' is not specified in the schema\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestParseSchemaUnknownType(t *testing.T) {
	got := parseErr(t, `
uri: thing
schema:
  type: banana
`)
	want := "#.thing: unknown type specified: banana\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileErrorPathThroughNestedObjects(t *testing.T) {
	got := parseErr(t, `
uri: nested
schema:
  type: object
  items:
    test:
      type: integer
    something:
      type: object
      items:
        level2:
          type: object
          items:
            leaf:
              notype: hello
`)
	want := "#.nested.items.something.items.level2.items.leaf: missing field, 'type' not found\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileStringLengthOrder(t *testing.T) {
	got := parseErr(t, `
uri: s
schema:
  type: string
  minLength: 5
  maxLength: 2
`)
	want := "#.s: malformed field: minLength cannot be greater than maxLength\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileStringBadPattern(t *testing.T) {
	got := parseErr(t, `
uri: s
schema:
  type: string
  pattern: "(unclosed"
`)
	want := "#.s.pattern: malformed field: "
	if len(got) < len(want) || got[:len(want)] != want {
		t.Fatalf("error = %q, want prefix %q", got, want)
	}
}

func TestCompileNumericRanges(t *testing.T) {
	cases := []struct {
		name   string
		schema string
		ok     bool
	}{
		{"inclusive single point", "type: integer\nminimum: 10\nmaximum: 10", true},
		{"exclusive empty integer", "type: integer\nexclusiveMinimum: 10\nexclusiveMaximum: 10", false},
		{"exclusive unit integer", "type: integer\nexclusiveMinimum: 10\nexclusiveMaximum: 11", false},
		{"exclusive wide integer", "type: integer\nexclusiveMinimum: 10\nexclusiveMaximum: 12", true},
		{"exclusive unit real", "type: real\nexclusiveMinimum: 10\nexclusiveMaximum: 11", true},
		{"exclusive empty real", "type: real\nexclusiveMinimum: 10.0\nexclusiveMaximum: 10.0", false},
		{"inverted inclusive", "type: integer\nminimum: 11\nmaximum: 10", false},
	}
	for _, tc := range cases {
		src := "uri: u\nschema:\n" + indent(tc.schema)
		_, err := yamlskema.ParseSchema(loadDoc(t, src))
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok {
			want := "#.u: malformed field: lower and upper limits describe an empty range\n"
			if err == nil || err.Error() != want {
				t.Fatalf("%s: error = %v, want %q", tc.name, err, want)
			}
		}
	}
}

func TestCompileExclusiveLimitsAreMutuallyExclusive(t *testing.T) {
	got := parseErr(t, `
uri: u
schema:
  type: integer
  minimum: 1
  exclusiveMinimum: 1
`)
	want := "#.u: malformed field: minimum and exclusiveMinimum are mutually exclusive\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileMultipleOfMustBePositive(t *testing.T) {
	got := parseErr(t, `
uri: u
schema:
  type: integer
  multipleOf: 0
`)
	want := "#.u.multipleOf: malformed field: multipleOf must be a strictly positive value\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileCombinatorNeedsBranches(t *testing.T) {
	got := parseErr(t, `
uri: u
schema:
  oneOf: []
`)
	want := "#.u.oneOf: malformed field: oneOf modifier requires an array of schemas to validate against\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileCombinatorChildErrors(t *testing.T) {
	got := parseErr(t, `
uri: u
schema:
  anyOf:
    - type: integer
    - type: nonsense
`)
	want := "#.u.items: unknown type specified: nonsense\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileContainsCountsRequireContains(t *testing.T) {
	got := parseErr(t, `
uri: u
schema:
  type: array
  minContains: 1
`)
	want := "#.u: malformed field: minContains requires 'contains' to specify a schema to validate against\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileRequiredEntriesMustBeStrings(t *testing.T) {
	got := parseErr(t, `
uri: u
schema:
  type: object
  items:
    name:
      type: string
  required:
    - name
    - 3
`)
	want := "#.u.required: wrong type, expected string got integer\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestCompileWrongKindFields(t *testing.T) {
	got := parseErr(t, `
uri: u
schema:
  type: string
  minLength: short
`)
	want := "#.u.minLength: wrong type, expected integer got string\n"
	if got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestNewContextAggregatesCompileFailures(t *testing.T) {
	docs := []any{
		loadDoc(t, "uri: a\nschema:\n  type: banana\n"),
		loadDoc(t, "uri: b\nschema:\n  type: boolean\n"),
		loadDoc(t, "uri: c\nschema:\n  type: mango\n"),
	}
	_, err := yamlskema.NewContext(docs...)
	if err == nil {
		t.Fatal("context built, want compile failure")
	}
	want := "#.a: unknown type specified: banana\n" +
		"#.c: unknown type specified: mango\n"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}
