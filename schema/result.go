package schema

import "github.com/instancekit/jsonv"

// Result is the outcome of a validation call: Ok with no Errors, or
// not-Ok with one entry per violation found. Kept as a flat error list
// rather than an annotation-tracking structure, since
// unevaluatedProperties-style bookkeeping has no equivalent in
// draft-4.
type Result struct {
	Ok     bool
	Errors []string
}

func newResult(errs []string) *Result {
	return &Result{Ok: len(errs) == 0, Errors: errs}
}

// Value renders the result as a jsonv.Value: {"ok":true} or
// {"ok":false,"errors":[...]}, matching the data contract a caller
// might want to serialize or pass along.
func (r *Result) Value() *jsonv.Value {
	out := jsonv.Object().Set("ok", jsonv.Bool(r.Ok))
	if !r.Ok {
		errs := jsonv.Array()
		for _, e := range r.Errors {
			errs.Add(jsonv.String(e))
		}
		out.Set("errors", errs)
	}
	return out
}
