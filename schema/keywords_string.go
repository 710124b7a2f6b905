package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/instancekit/jsonv"
)

// compileStringLength implements "minLength"/"maxLength", measured in
// Unicode code points rather than UTF-16 code units or bytes.
func compileStringLength(c *Compiler, node *jsonv.Value) (instruction, error) {
	minV, maxV := node.At("minLength"), node.At("maxLength")
	if minV == nil && maxV == nil {
		return nil, nil
	}
	var minLen, maxLen int
	hasMin, hasMax := minV != nil, maxV != nil
	if hasMin {
		if !minV.IsNumber() {
			return nil, fmt.Errorf("%w: \"minLength\" must be a number", ErrInvalidKeyword)
		}
		minLen = int(minV.NumberValue().Int64())
	}
	if hasMax {
		if !maxV.IsNumber() {
			return nil, fmt.Errorf("%w: \"maxLength\" must be a number", ErrInvalidKeyword)
		}
		maxLen = int(maxV.NumberValue().Int64())
	}

	return func(_ *evalContext, v *jsonv.Value) []string {
		if !v.IsString() {
			return nil
		}
		n := utf8.RuneCountInString(v.StringValue())
		var errs []string
		if hasMin && n < minLen {
			errs = append(errs, fmt.Sprintf("string length %d is less than minLength %d", n, minLen))
		}
		if hasMax && n > maxLen {
			errs = append(errs, fmt.Sprintf("string length %d exceeds maxLength %d", n, maxLen))
		}
		return errs
	}, nil
}

// compilePattern implements "pattern": the instance string must
// contain a substring matching the regular expression, per draft-4's
// ECMA-262 RegExp.test semantics (see regex.go for why this needs
// regexp2 rather than the standard library).
func compilePattern(c *Compiler, node *jsonv.Value) (instruction, error) {
	pv := node.At("pattern")
	if pv == nil {
		return nil, nil
	}
	if !pv.IsString() {
		return nil, fmt.Errorf("%w: \"pattern\" must be a string", ErrInvalidKeyword)
	}
	re, err := compileRegex(pv.StringValue())
	if err != nil {
		return nil, err
	}

	return func(_ *evalContext, v *jsonv.Value) []string {
		if !v.IsString() {
			return nil
		}
		if regexFind(re, v.StringValue()) {
			return nil
		}
		return []string{fmt.Sprintf("string does not match pattern %q", pv.StringValue())}
	}, nil
}
