package schema

import (
	"fmt"

	"github.com/instancekit/jsonv"
)

// compileArrayShape implements "items" (schema or positional array of
// schemas), "additionalItems", "uniqueItems", "minItems" and
// "maxItems" as one instruction.
func compileArrayShape(c *Compiler, node *jsonv.Value) (instruction, error) {
	itemsV := node.At("items")
	additionalV := node.At("additionalItems")
	uniqueV := node.At("uniqueItems")
	minV := node.At("minItems")
	maxV := node.At("maxItems")

	if itemsV == nil && additionalV == nil && uniqueV == nil && minV == nil && maxV == nil {
		return nil, nil
	}

	var singleItems instruction
	var positionalItems []instruction
	switch {
	case itemsV == nil:
		// no-op
	case itemsV.IsObject():
		ins, err := c.compileNode(itemsV)
		if err != nil {
			return nil, err
		}
		singleItems = ins
	case itemsV.IsArray():
		for i, sub := range itemsV.Elements() {
			if !sub.IsObject() {
				return nil, fmt.Errorf("%w: \"items\"[%d] must be a schema object", ErrInvalidKeyword, i)
			}
			ins, err := c.compileNode(sub)
			if err != nil {
				return nil, err
			}
			positionalItems = append(positionalItems, ins)
		}
	default:
		return nil, fmt.Errorf("%w: \"items\" must be a schema object or array of schemas", ErrInvalidKeyword)
	}

	var additionalIns instruction
	additionalForbidden := false
	if additionalV != nil && positionalItems != nil {
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
			return nil, fmt.Errorf("%w: \"additionalItems\" must be a boolean or schema object", ErrInvalidKeyword)
		}
	}

	unique := false
	if uniqueV != nil {
		if !uniqueV.IsBool() {
			return nil, fmt.Errorf("%w: \"uniqueItems\" must be a boolean", ErrInvalidKeyword)
		}
		unique = uniqueV.BoolValue()
	}

	hasMin, hasMax := minV != nil, maxV != nil
	var minCount, maxCount int
	if hasMin {
		if !minV.IsNumber() {
			return nil, fmt.Errorf("%w: \"minItems\" must be a number", ErrInvalidKeyword)
		}
		minCount = int(minV.NumberValue().Int64())
	}
	if hasMax {
		if !maxV.IsNumber() {
			return nil, fmt.Errorf("%w: \"maxItems\" must be a number", ErrInvalidKeyword)
		}
		maxCount = int(maxV.NumberValue().Int64())
	}

	return func(ctx *evalContext, v *jsonv.Value) []string {
		if !v.IsArray() {
			return nil
		}
		var errs []string
		elems := v.Elements()

		if hasMin && len(elems) < minCount {
			errs = append(errs, fmt.Sprintf("array has %d items, fewer than the required minimum of %d", len(elems), minCount))
		}
		if hasMax && len(elems) > maxCount {
			errs = append(errs, fmt.Sprintf("array has %d items, more than the permitted maximum of %d", len(elems), maxCount))
		}

		switch {
		case singleItems != nil:
			for _, e := range elems {
				errs = append(errs, singleItems(ctx, e)...)
			}
		case positionalItems != nil:
			for i, e := range elems {
				if i < len(positionalItems) {
					errs = append(errs, positionalItems[i](ctx, e)...)
					continue
				}
				switch {
				case additionalForbidden:
					errs = append(errs, fmt.Sprintf("item at index %d is not permitted by \"additionalItems\"", i))
				case additionalIns != nil:
					errs = append(errs, additionalIns(ctx, e)...)
				}
			}
		}

		if unique {
			for i := 0; i < len(elems); i++ {
				for j := i + 1; j < len(elems); j++ {
					if jsonv.Equal(elems[i], elems[j]) {
						errs = append(errs, fmt.Sprintf("items at indexes %d and %d are duplicates", i, j))
					}
				}
			}
		}

		return errs
	}, nil
}
