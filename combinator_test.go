package yamlskema_test

import "testing"

func TestOneOfAcceptsExactlyOneBranch(t *testing.T) {
	schema := `oneOf:
  - type: integer
  - type: string`
	if err := validateOne(t, schema, "42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateOne(t, schema, `"forty-two"`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOneOfReportsEveryBranchOnTotalFailure(t *testing.T) {
	err := validateOne(t, `oneOf:
  - type: integer
  - type: boolean`, `"nope"`)
	wantFailure(t, err,
		"#.oneOf: wrong type, expected integer got string\n"+
			"#.oneOf: wrong type, expected boolean got string\n")
}

func TestOneOfAmbiguityReportsEachMatchingBranch(t *testing.T) {
	err := validateOne(t, `oneOf:
  - type: integer
  - type: integer
    minimum: 0
  - type: string`, "5")
	wantFailure(t, err,
		"#[0]: multiple branches validated successfully\n"+
			"#[1]: multiple branches validated successfully\n")
}

func TestAnyOfAcceptsFirstMatch(t *testing.T) {
	schema := `anyOf:
  - type: integer
  - type: integer
    minimum: 0`
	if err := validateOne(t, schema, "-5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnyOfReportsEveryBranchOnTotalFailure(t *testing.T) {
	err := validateOne(t, `anyOf:
  - type: integer
  - type: boolean`, `"nope"`)
	wantFailure(t, err,
		"#.anyOf: wrong type, expected integer got string\n"+
			"#.anyOf: wrong type, expected boolean got string\n")
}

func TestAllOfRequiresEveryBranch(t *testing.T) {
	schema := `allOf:
  - type: integer
    minimum: 0
  - type: integer
    multipleOf: 2`
	if err := validateOne(t, schema, "4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFailure(t, validateOne(t, schema, "3"),
		"#: value must be a multiple of the multipleOf field\n")
}

func TestAllOfAggregatesBranchFailures(t *testing.T) {
	err := validateOne(t, `allOf:
  - type: integer
  - type: string`, "true")
	wantFailure(t, err,
		"#: wrong type, expected integer got boolean\n"+
			"#: wrong type, expected string got boolean\n")
}

func TestNotInvertsTheInnerVerdict(t *testing.T) {
	schema := `not:
  type: integer`
	if err := validateOne(t, schema, `"text"`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFailure(t, validateOne(t, schema, "5"),
		"#: validation inversion failed because inner result matched\n")
}

func TestDoubleNegationRestoresTheInnerVerdict(t *testing.T) {
	schema := `not:
  not:
    type: integer`
	if err := validateOne(t, schema, "5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantFailure(t, validateOne(t, schema, `"text"`),
		"#: validation inversion failed because inner result matched\n")
}

func TestCombinatorErrorsCarryTheDocumentPath(t *testing.T) {
	err := validateOne(t, `type: object
items:
  value:
    oneOf:
      - type: integer
      - type: boolean`, "value: nope\n")
	wantFailure(t, err,
		"#.value.oneOf: wrong type, expected integer got string\n"+
			"#.value.oneOf: wrong type, expected boolean got string\n")
}
