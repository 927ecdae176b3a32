// Package yamlsource loads YAML text into the generic document tree the
// yamlskema engine reads: map[string]any, []any, string, int64, float64,
// bool and nil. The engine itself never touches raw bytes.
package yamlsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Load decodes every document of a YAML stream in order, normalizing
// scalars to the engine's document model.
func Load(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		doc, err := normalize(v)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// LoadOne decodes the first document of a YAML stream; an empty stream is an
// error.
func LoadOne(data []byte) (any, error) {
	docs, err := Load(data)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errors.New("yamlsource: no documents in input")
	}
	return docs[0], nil
}

func normalize(v any) (any, error) {
	switch value := v.(type) {
	case nil, string, bool:
		return value, nil
	case int:
		return int64(value), nil
	case int64:
		return value, nil
	case uint64:
		if value > math.MaxInt64 {
			return nil, fmt.Errorf("yamlsource: integer %d overflows the document model", value)
		}
		return int64(value), nil
	case float32:
		return float64(value), nil
	case float64:
		return value, nil
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
	case map[any]any:
		out := make(map[string]any, len(value))
		for key, item := range value {
			name, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("yamlsource: mapping keys must be strings, got %T", key)
			}
			norm, err := normalize(item)
			if err != nil {
				return nil, err
			}
			out[name] = norm
		}
		return out, nil
	default:
		return nil, fmt.Errorf("yamlsource: unsupported value of type %T", v)
	}
}
