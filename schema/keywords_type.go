package schema

import (
	"fmt"

	"github.com/instancekit/jsonv"
)

// compileType implements the "type" keyword: a string or array of
// strings naming acceptable JSON kinds. "integer" is special-cased to
// accept a number value with zero fractional part, matching draft-4's
// distinction between "number" and "integer".
func compileType(c *Compiler, node *jsonv.Value) (instruction, error) {
	tv := node.At("type")
	if tv == nil {
		return nil, nil
	}
	var names []string
	switch {
	case tv.IsString():
		names = []string{tv.StringValue()}
	case tv.IsArray():
		for _, e := range tv.Elements() {
			if !e.IsString() {
				return nil, fmt.Errorf("%w: \"type\" array must contain only strings", ErrInvalidKeyword)
			}
			names = append(names, e.StringValue())
		}
	default:
		return nil, fmt.Errorf("%w: \"type\" must be a string or array of strings", ErrInvalidKeyword)
	}

	return func(_ *evalContext, v *jsonv.Value) []string {
		for _, name := range names {
			if matchesType(v, name) {
				return nil
			}
		}
		return []string{fmt.Sprintf("value is %s but must be %s", v.Kind(), joinOr(names))}
	}, nil
}

func matchesType(v *jsonv.Value, name string) bool {
	switch name {
	case "integer":
		return v.IsNumber() && v.NumberValue().IsIntegral()
	case "number":
		return v.IsNumber()
	case "string":
		return v.IsString()
	case "boolean":
		return v.IsBool()
	case "object":
		return v.IsObject()
	case "array":
		return v.IsArray()
	case "null":
		return v.IsNull()
	default:
		return false
	}
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return "(no types)"
	case 1:
		return names[0]
	default:
		out := names[0]
		for _, n := range names[1:] {
			out += " or " + n
		}
		return out
	}
}
