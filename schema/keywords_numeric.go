package schema

import (
	"fmt"
	"math/big"

	"github.com/instancekit/jsonv"
)

// compileNumericRange implements "minimum"/"maximum" together with
// their draft-4 boolean "exclusiveMinimum"/"exclusiveMaximum"
// modifiers. Draft-4 differs from later drafts here: the exclusive
// flags are booleans attached to minimum/maximum, not standalone
// numeric bounds.
func compileNumericRange(c *Compiler, node *jsonv.Value) (instruction, error) {
	minV, maxV := node.At("minimum"), node.At("maximum")
	if minV == nil && maxV == nil {
		return nil, nil
	}

	exclusiveMin, err := boolKeyword(node, "exclusiveMinimum")
	if err != nil {
		return nil, err
	}
	exclusiveMax, err := boolKeyword(node, "exclusiveMaximum")
	if err != nil {
		return nil, err
	}

	var minRat, maxRat *big.Rat
	hasMin, hasMax := minV != nil, maxV != nil
	if hasMin {
		if !minV.IsNumber() {
			return nil, fmt.Errorf("%w: \"minimum\" must be a number", ErrInvalidKeyword)
		}
		minRat = minV.NumberValue().Rat()
	}
	if hasMax {
		if !maxV.IsNumber() {
			return nil, fmt.Errorf("%w: \"maximum\" must be a number", ErrInvalidKeyword)
		}
		maxRat = maxV.NumberValue().Rat()
	}

	return func(_ *evalContext, v *jsonv.Value) []string {
		if !v.IsNumber() {
			return nil
		}
		r := v.NumberValue().Rat()
		var errs []string
		if hasMin {
			cmp := r.Cmp(minRat)
			if cmp < 0 || (exclusiveMin && cmp == 0) {
				errs = append(errs, fmt.Sprintf("value %s is below the minimum of %s", v.NumberValue(), minV.NumberValue()))
			}
		}
		if hasMax {
			cmp := r.Cmp(maxRat)
			if cmp > 0 || (exclusiveMax && cmp == 0) {
				errs = append(errs, fmt.Sprintf("value %s exceeds the maximum of %s", v.NumberValue(), maxV.NumberValue()))
			}
		}
		return errs
	}, nil
}

// compileMultipleOf implements "multipleOf": the instance divided by
// the divisor must be an exact integer, checked with big.Rat rather
// than a float64 modulo to avoid false negatives on values like 0.1.
func compileMultipleOf(c *Compiler, node *jsonv.Value) (instruction, error) {
	mv := node.At("multipleOf")
	if mv == nil {
		return nil, nil
	}
	if !mv.IsNumber() {
		return nil, fmt.Errorf("%w: \"multipleOf\" must be a number", ErrInvalidKeyword)
	}
	divisor := mv.NumberValue().Rat()
	if divisor.Sign() == 0 {
		return nil, fmt.Errorf("%w: \"multipleOf\" must not be zero", ErrInvalidKeyword)
	}

	return func(_ *evalContext, v *jsonv.Value) []string {
		if !v.IsNumber() {
			return nil
		}
		quotient := new(big.Rat).Quo(v.NumberValue().Rat(), divisor)
		if quotient.IsInt() {
			return nil
		}
		return []string{fmt.Sprintf("value %s is not a multiple of %s", v.NumberValue(), mv.NumberValue())}
	}, nil
}

func boolKeyword(node *jsonv.Value, name string) (bool, error) {
	v := node.At(name)
	if v == nil {
		return false, nil
	}
	if !v.IsBool() {
		return false, fmt.Errorf("%w: %q must be a boolean", ErrInvalidKeyword, name)
	}
	return v.BoolValue(), nil
}
