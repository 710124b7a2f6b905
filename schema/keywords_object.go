package schema

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/instancekit/jsonv"
)

type patternPropEntry struct {
	pattern string
	re      *regexp2.Regexp
	ins     instruction
}

// compileObjectShape implements "properties", "patternProperties",
// "additionalProperties", "minProperties" and "maxProperties" as one
// instruction, since additionalProperties needs to know which property
// names "properties" and "patternProperties" already accounted for. That
// bookkeeping is a
// plain local map built fresh on every call, so it never leaks marks
// between two schema nodes that happen to validate the same instance
// object (e.g. this schema and a sibling under "allOf"), and a single
// compiled Validator stays safe to run concurrently regardless.
func compileObjectShape(c *Compiler, node *jsonv.Value) (instruction, error) {
	propertiesV := node.At("properties")
	patternPropsV := node.At("patternProperties")
	additionalV := node.At("additionalProperties")
	minV := node.At("minProperties")
	maxV := node.At("maxProperties")

	if propertiesV == nil && patternPropsV == nil && additionalV == nil && minV == nil && maxV == nil {
		return nil, nil
	}

	properties := map[string]instruction{}
	var propertyNames []string
	if propertiesV != nil {
		if !propertiesV.IsObject() {
			return nil, fmt.Errorf("%w: \"properties\" must be an object", ErrInvalidKeyword)
		}
		for _, name := range propertiesV.Keys() {
			sub := propertiesV.At(name)
			if !sub.IsObject() {
				return nil, fmt.Errorf("%w: \"properties\"[%q] must be a schema object", ErrInvalidKeyword, name)
			}
			ins, err := c.compileNode(sub)
			if err != nil {
				return nil, err
			}
			properties[name] = ins
			propertyNames = append(propertyNames, name)
		}
	}

	var patternProps []patternPropEntry
	if patternPropsV != nil {
		if !patternPropsV.IsObject() {
			return nil, fmt.Errorf("%w: \"patternProperties\" must be an object", ErrInvalidKeyword)
		}
		for _, pat := range patternPropsV.Keys() {
			sub := patternPropsV.At(pat)
			if !sub.IsObject() {
				return nil, fmt.Errorf("%w: \"patternProperties\"[%q] must be a schema object", ErrInvalidKeyword, pat)
			}
			re, err := compileRegex(pat)
			if err != nil {
				return nil, err
			}
			ins, err := c.compileNode(sub)
			if err != nil {
				return nil, err
			}
			patternProps = append(patternProps, patternPropEntry{pattern: pat, re: re, ins: ins})
		}
	}

	var additionalIns instruction
	additionalForbidden := false
	if additionalV != nil {
		switch {
		case additionalV.IsBool():
			additionalForbidden = !additionalV.BoolValue()
		case additionalV.IsObject():
			ins, err := c.compileNode(additionalV)
			if err != nil {
				return nil, err
			}
			additionalIns = ins
		default:
			return nil, fmt.Errorf("%w: \"additionalProperties\" must be a boolean or schema object", ErrInvalidKeyword)
		}
	}

	hasMin, hasMax := minV != nil, maxV != nil
	var minCount, maxCount int
	if hasMin {
		if !minV.IsNumber() {
			return nil, fmt.Errorf("%w: \"minProperties\" must be a number", ErrInvalidKeyword)
		}
		minCount = int(minV.NumberValue().Int64())
	}
	if hasMax {
		if !maxV.IsNumber() {
			return nil, fmt.Errorf("%w: \"maxProperties\" must be a number", ErrInvalidKeyword)
		}
		maxCount = int(maxV.NumberValue().Int64())
	}

	return func(ctx *evalContext, v *jsonv.Value) []string {
		if !v.IsObject() {
			return nil
		}
		var errs []string

		if hasMin && v.Len() < minCount {
			errs = append(errs, fmt.Sprintf("object has %d properties, fewer than the required minimum of %d", v.Len(), minCount))
		}
		if hasMax && v.Len() > maxCount {
			errs = append(errs, fmt.Sprintf("object has %d properties, more than the permitted maximum of %d", v.Len(), maxCount))
		}

		// checked is local to this call, not threaded through ctx: it
		// must reflect only this schema node's own "properties" and
		// "patternProperties", never another schema node's marks on the
		// same instance object (e.g. a sibling under "allOf").
		checked := map[string]bool{}

		for _, name := range propertyNames {
			checked[name] = true
			if v.Has(name) {
				errs = append(errs, properties[name](ctx, v.At(name))...)
			}
		}

		for _, entry := range patternProps {
			for _, name := range v.Keys() {
				if !regexFind(entry.re, name) {
					continue
				}
				checked[name] = true
				errs = append(errs, entry.ins(ctx, v.At(name))...)
			}
		}

		for _, name := range v.Keys() {
			if checked[name] {
				continue
			}
			switch {
			case additionalForbidden:
				errs = append(errs, fmt.Sprintf("additional property %q is not allowed", name))
			case additionalIns != nil:
				errs = append(errs, additionalIns(ctx, v.At(name))...)
			}
		}

		return errs
	}, nil
}
