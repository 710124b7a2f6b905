package schema

import (
	"fmt"

	"github.com/instancekit/jsonv"
)

type dependency struct {
	name     string
	schema   instruction
	required []string
}

// compileDependencies implements draft-4's unified "dependencies"
// keyword: each property name maps to either a schema (validated
// against the whole object when the property is present) or an array
// of other property names that must also be present. Later drafts
// split this into "dependentSchemas"/"dependentRequired"; draft-4 does
// not distinguish them syntactically.
func compileDependencies(c *Compiler, node *jsonv.Value) (instruction, error) {
	depsV := node.At("dependencies")
	if depsV == nil {
		return nil, nil
	}
	if !depsV.IsObject() {
		return nil, fmt.Errorf("%w: \"dependencies\" must be an object", ErrInvalidKeyword)
	}

	var deps []dependency
	for _, name := range depsV.Keys() {
		v := depsV.At(name)
		switch {
		case v.IsObject():
			ins, err := c.compileNode(v)
			if err != nil {
				return nil, err
			}
			deps = append(deps, dependency{name: name, schema: ins})
		case v.IsArray():
			var required []string
			for _, e := range v.Elements() {
				if !e.IsString() {
					return nil, fmt.Errorf("%w: \"dependencies\"[%q] array must contain only strings", ErrInvalidKeyword, name)
				}
				required = append(required, e.StringValue())
			}
			deps = append(deps, dependency{name: name, required: required})
		default:
			return nil, fmt.Errorf("%w: \"dependencies\"[%q] must be a schema or array of strings", ErrInvalidKeyword, name)
		}
	}

	return func(ctx *evalContext, v *jsonv.Value) []string {
		if !v.IsObject() {
			return nil
		}
		var errs []string
		for _, dep := range deps {
			if !v.Has(dep.name) {
				continue
			}
			if dep.schema != nil {
				errs = append(errs, dep.schema(ctx, v)...)
				continue
			}
			for _, req := range dep.required {
				if !v.Has(req) {
					errs = append(errs, fmt.Sprintf("property %q requires property %q to also be present", dep.name, req))
				}
			}
		}
		return errs
	}, nil
}
