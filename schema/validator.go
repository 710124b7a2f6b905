package schema

import "github.com/instancekit/jsonv"

// Validator is a compiled schema, ready to check documents. It holds
// no per-call mutable state, so a single Validator may be used
// concurrently from many goroutines.
type Validator struct {
	root instruction
}

// Validate runs v against doc and returns the result as both a Go
// struct and (via Result.Value) a jsonv.Value matching the data
// contract callers may want to serialize.
func (v *Validator) Validate(doc *jsonv.Value) *Result {
	ctx := newEvalContext()
	errs := v.root(ctx, doc)
	return newResult(errs)
}
