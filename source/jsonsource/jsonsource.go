// Package jsonsource loads JSON text into the generic document tree the
// yamlskema engine reads. Numbers decode through json.Number so integers and
// reals remain distinct document kinds, which the engine's type checks rely
// on.
package jsonsource

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Load decodes one JSON document, normalizing scalars to the engine's
// document model.
func Load(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalize(v)
}

func normalize(v any) (any, error) {
	switch value := v.(type) {
	case nil, string, bool:
		return value, nil
	case json.Number:
		s := value.String()
		if strings.ContainsAny(s, ".eE") {
			return value.Float64()
		}
		if i, err := value.Int64(); err == nil {
			return i, nil
		}
		// Integral form too large for int64; fall back to the real kind.
		return value.Float64()
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			norm, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			norm, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[key] = norm
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsonsource: unsupported value of type %T", v)
	}
}
