package schema

import "github.com/instancekit/jsonv"

// instruction is a compiled, reusable check: given a value and the
// per-call context it is running under, it returns the validation
// errors it found (nil for none). An instruction tree is built once
// by the compiler and may be invoked concurrently by multiple
// goroutines, since all mutable validation state lives in the context
// or in locals of a single invocation, never on the instruction itself.
type instruction func(ctx *evalContext, v *jsonv.Value) []string

// sequence runs every instruction in order and concatenates their
// errors, preserving source order as required for deterministic
// allOf/object-shape diagnostics.
type sequence []instruction

// run has a pointer receiver and dereferences *s at call time, not at
// the time a method value is formed from it. That is what lets the
// compiler hand out a closure over an as-yet-empty *sequence while
// still compiling a recursive schema's children: every closure reads
// through the pointer when it actually runs, by which point
// compileNode has finished populating it.
func (s *sequence) run(ctx *evalContext, v *jsonv.Value) []string {
	var errs []string
	for _, ins := range *s {
		errs = append(errs, ins(ctx, v)...)
	}
	return errs
}

// evalContext carries state that must be scoped to a single validation
// call rather than to the compiled instruction tree itself. It is
// currently empty: the one thing that used to live here (the set of
// object properties "properties"/"patternProperties" already
// accounted for, consulted by "additionalProperties") turned out to
// need per-schema-node scope, not per-call scope -- two schema nodes
// checking the same instance object must not see each other's marks
// -- so compileObjectShape now keeps that set local to its own
// closure invocation instead. Kept as a type (rather than removed) so
// future per-call, cross-keyword state has somewhere to live without
// changing every instruction's signature.
type evalContext struct{}

func newEvalContext() *evalContext {
	return &evalContext{}
}
