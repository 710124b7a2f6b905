package schema

import (
	"fmt"

	"github.com/instancekit/jsonv"
)

// compileRequired implements "required": every named property must be
// present on an object instance. Non-object instances are untouched
// (the "type" keyword is responsible for rejecting them if needed).
func compileRequired(c *Compiler, node *jsonv.Value) (instruction, error) {
	rv := node.At("required")
	if rv == nil {
		return nil, nil
	}
	if !rv.IsArray() {
		return nil, fmt.Errorf("%w: \"required\" must be an array of strings", ErrInvalidKeyword)
	}
	var names []string
	for _, e := range rv.Elements() {
		if !e.IsString() {
			return nil, fmt.Errorf("%w: \"required\" must be an array of strings", ErrInvalidKeyword)
		}
		names = append(names, e.StringValue())
	}

	return func(_ *evalContext, v *jsonv.Value) []string {
		if !v.IsObject() {
			return nil
		}
		var errs []string
		for _, name := range names {
			if !v.Has(name) {
				errs = append(errs, fmt.Sprintf("missing required property %q", name))
			}
		}
		return errs
	}, nil
}
