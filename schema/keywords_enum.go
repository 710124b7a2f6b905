package schema

import (
	"fmt"

	"github.com/instancekit/jsonv"
)

// compileEnum implements "enum": the instance must be structurally
// equal to one of the listed options.
func compileEnum(c *Compiler, node *jsonv.Value) (instruction, error) {
	ev := node.At("enum")
	if ev == nil {
		return nil, nil
	}
	if !ev.IsArray() {
		return nil, fmt.Errorf("%w: \"enum\" must be an array", ErrInvalidKeyword)
	}
	options := ev.Elements()

	return func(_ *evalContext, v *jsonv.Value) []string {
		for _, opt := range options {
			if jsonv.Equal(v, opt) {
				return nil
			}
		}
		return []string{fmt.Sprintf("value %s is not one of the allowed enum values", v.ToString(80))}
	}, nil
}
