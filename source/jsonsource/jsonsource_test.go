package jsonsource_test

import (
	"reflect"
	"testing"

	"github.com/reoring/yamlskema/source/jsonsource"
)

func TestLoadKeepsIntegersAndRealsDistinct(t *testing.T) {
	doc, err := jsonsource.Load([]byte(`{"count": 3, "ratio": 0.5, "exp": 1e3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"count": int64(3),
		"ratio": 0.5,
		"exp":   1000.0,
	}
	if !reflect.DeepEqual(doc, want) {
		t.Fatalf("doc = %#v, want %#v", doc, want)
	}
}

func TestLoadNestedContainers(t *testing.T) {
	doc, err := jsonsource.Load([]byte(`{"items": [1, "two", {"three": true}, null]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{
		"items": []any{int64(1), "two", map[string]any{"three": true}, nil},
	}
	if !reflect.DeepEqual(doc, want) {
		t.Fatalf("doc = %#v, want %#v", doc, want)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	if _, err := jsonsource.Load([]byte(`{"open":`)); err == nil {
		t.Fatal("malformed input loaded, want error")
	}
}
