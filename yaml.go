package jsonv

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// ParseYAML decodes a single YAML document into a Value via the same
// construction seam FromAny uses, so schema and instance documents
// authored in YAML need no separate code path through the rest of the
// package.
func ParseYAML(data []byte) (*Value, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("jsonv: decoding YAML: %w", err)
	}
	return FromAny(normalizeYAML(raw))
}

// ParseYAMLReader is the streaming counterpart of ParseYAML.
func ParseYAMLReader(r io.Reader) (*Value, error) {
	var raw interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("jsonv: decoding YAML: %w", err)
	}
	return FromAny(normalizeYAML(raw))
}

// normalizeYAML widens the map/slice element types goccy/go-yaml
// produces (map[string]interface{}, []interface{}, and Go's native
// int/int64/uint64 for integral scalars) into the shapes FromAny
// already understands.
func normalizeYAML(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = normalizeYAML(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = normalizeYAML(e)
		}
		return out
	case uint64:
		return int64(t)
	case int:
		return int64(t)
	default:
		return t
	}
}
