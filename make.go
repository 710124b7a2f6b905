package jsonv

import "fmt"

// FromAny builds a Value from a plain Go value using the process-wide
// factory, dispatching on its dynamic type the way encoding/json's
// decoder would when targeting interface{}: maps become objects,
// slices become arrays, and the JSON-ish scalar types map directly
// onto the matching kind.
func FromAny(v interface{}) (*Value, error) {
	return FromAnyWith(CurrentFactory(), v)
}

// FromAnyWith is FromAny with an explicit Factory in place of the
// process-wide one installed by SetProcessFactory, for callers that
// need a scoped construction policy (e.g. case-insensitive object
// keys) without mutating global state. Numbers are still built
// directly through IntOf/NumberOf rather than f.Number: f.Number takes
// a float64, which cannot carry the int-vs-arbitrary-precision
// distinction those helpers preserve.
func FromAnyWith(f Factory, v interface{}) (*Value, error) {
	switch t := v.(type) {
	case nil:
		return f.Null(), nil
	case *Value:
		return t, nil
	case bool:
		return f.Bool(t), nil
	case string:
		return f.String(t), nil
	case float64:
		return NumberOf(t), nil
	case float32:
		return NumberOf(float64(t)), nil
	case int:
		return IntOf(int64(t)), nil
	case int32:
		return IntOf(int64(t)), nil
	case int64:
		return IntOf(t), nil
	case Number:
		return numberValue(t), nil
	case map[string]interface{}:
		out := f.Object()
		for k, e := range t {
			ev, err := FromAnyWith(f, e)
			if err != nil {
				return nil, err
			}
			out.Set(k, ev)
		}
		return out, nil
	case []interface{}:
		out := f.Array()
		for _, e := range t {
			ev, err := FromAnyWith(f, e)
			if err != nil {
				return nil, err
			}
			out.Add(ev)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}
