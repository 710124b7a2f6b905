package schema

import (
	"fmt"

	"github.com/instancekit/jsonv"
)

// compileAllOf implements "allOf": every listed subschema must accept
// the instance. Sub-errors are accumulated like any other keyword.
func compileAllOf(c *Compiler, node *jsonv.Value) (instruction, error) {
	arr := node.At("allOf")
	if arr == nil {
		return nil, nil
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("%w: \"allOf\" must be an array", ErrInvalidKeyword)
	}
	subs, err := compileEach(c, arr)
	if err != nil {
		return nil, err
	}
	return func(ctx *evalContext, v *jsonv.Value) []string {
		var errs []string
		for _, sub := range subs {
			errs = append(errs, sub(ctx, v)...)
		}
		return errs
	}, nil
}

// compileAnyOf implements "anyOf": at least one listed subschema must
// accept the instance. On failure, sub-errors are discarded in favor
// of a single synthetic summary error, since "which of N schemas
// almost matched" is rarely useful and "oneOf"/"anyOf" are specified
// to short-circuit internally.
func compileAnyOf(c *Compiler, node *jsonv.Value) (instruction, error) {
	arr := node.At("anyOf")
	if arr == nil {
		return nil, nil
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("%w: \"anyOf\" must be an array", ErrInvalidKeyword)
	}
	subs, err := compileEach(c, arr)
	if err != nil {
		return nil, err
	}
	return func(ctx *evalContext, v *jsonv.Value) []string {
		for _, sub := range subs {
			if len(sub(ctx, v)) == 0 {
				return nil
			}
		}
		return []string{"value must conform to at least one of the listed schemas"}
	}, nil
}

// compileOneOf implements "oneOf": exactly one listed subschema must
// accept the instance.
func compileOneOf(c *Compiler, node *jsonv.Value) (instruction, error) {
	arr := node.At("oneOf")
	if arr == nil {
		return nil, nil
	}
	if !arr.IsArray() {
		return nil, fmt.Errorf("%w: \"oneOf\" must be an array", ErrInvalidKeyword)
	}
	subs, err := compileEach(c, arr)
	if err != nil {
		return nil, err
	}
	return func(ctx *evalContext, v *jsonv.Value) []string {
		matches := 0
		for _, sub := range subs {
			if len(sub(ctx, v)) == 0 {
				matches++
			}
		}
		if matches == 1 {
			return nil
		}
		if matches == 0 {
			return []string{"value must conform to exactly one of the listed schemas, but matched none"}
		}
		return []string{fmt.Sprintf("value must conform to exactly one of the listed schemas, but matched %d", matches)}
	}, nil
}

// compileNot implements "not": the inner schema must fail.
func compileNot(c *Compiler, node *jsonv.Value) (instruction, error) {
	inner := node.At("not")
	if inner == nil {
		return nil, nil
	}
	if !inner.IsObject() {
		return nil, fmt.Errorf("%w: \"not\" must be a schema object", ErrInvalidKeyword)
	}
	sub, err := c.compileNode(inner)
	if err != nil {
		return nil, err
	}
	return func(ctx *evalContext, v *jsonv.Value) []string {
		if len(sub(ctx, v)) == 0 {
			return []string{"value must not conform to the schema in \"not\""}
		}
		return nil
	}, nil
}

func compileEach(c *Compiler, arr *jsonv.Value) ([]instruction, error) {
	var out []instruction
	for _, el := range arr.Elements() {
		if !el.IsObject() {
			return nil, fmt.Errorf("%w: expected a schema object", ErrInvalidKeyword)
		}
		ins, err := c.compileNode(el)
		if err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, nil
}
