package jsonv

import (
	"fmt"
	"sort"
	"strings"
)

// MergeOption configures With. An option is either a global flag
// (Dup, Sort) applying to every path, or a PathRule scoping its
// settings to specific JSON-Pointer paths rooted at the receiver.
type MergeOption interface {
	apply(*mergePolicy)
}

type globalFlag struct {
	dup  bool
	sort bool
}

func (g globalFlag) apply(p *mergePolicy) {
	if g.dup {
		p.dup = true
	}
	if g.sort {
		p.sortItems = true
	}
}

// Dup is a global option: values inserted from the argument side are
// deep-copied rather than re-parented into the result.
func Dup() MergeOption { return globalFlag{dup: true} }

// Sort is a global option: array merges at every path become a sorted
// union rather than a plain append.
func Sort() MergeOption { return globalFlag{sort: true} }

// PathRule scopes a merge policy to one or more JSON-Pointer paths,
// rooted at the receiver ("" means the whole document).
type PathRule struct {
	For       []string
	Merge     bool
	Dup       bool
	Sort      bool
	CompareBy []string
}

func (r PathRule) apply(p *mergePolicy) {}

type mergePolicy struct {
	merge     bool
	dup       bool
	sortItems bool
	compareBy []string
}

func compilePolicies(options []MergeOption) (global mergePolicy, byPath map[string]mergePolicy) {
	byPath = map[string]mergePolicy{}
	for _, opt := range options {
		switch o := opt.(type) {
		case globalFlag:
			o.apply(&global)
		case PathRule:
			pol := mergePolicy{merge: o.Merge, dup: o.Dup, sortItems: o.Sort, compareBy: o.CompareBy}
			for _, path := range o.For {
				byPath[path] = pol
			}
		}
	}
	return
}

func policyFor(path string, global mergePolicy, byPath map[string]mergePolicy) mergePolicy {
	pol := global
	if p, ok := byPath[path]; ok {
		if p.merge {
			pol.merge = true
		}
		if p.dup {
			pol.dup = true
		}
		if p.sortItems {
			pol.sortItems = true
		}
		if len(p.compareBy) > 0 {
			pol.compareBy = p.compareBy
		}
	}
	return pol
}

// With combines v and other, which must have the same kind, and
// returns the receiver. Arrays append other's elements by default;
// objects shallow-overwrite by key. Options scope deep-merge, sorted
// union, or deep-copy-on-insert behavior to specific paths.
func (v *Value) With(other *Value, options ...MergeOption) *Value {
	if other == nil {
		return v
	}
	if v.Kind() != other.Kind() {
		panic(fmt.Errorf("%w: %s vs %s", ErrMergeKindMismatch, v.Kind(), other.Kind()))
	}
	global, byPath := compilePolicies(options)
	mergeAt(v, other, "", global, byPath)
	return v
}

func mergeAt(dst, src *Value, path string, global mergePolicy, byPath map[string]mergePolicy) {
	pol := policyFor(path, global, byPath)
	switch dst.Kind() {
	case KindArray:
		mergeArray(dst, src, pol)
	case KindObject:
		mergeObject(dst, src, path, global, byPath, pol)
	default:
		// scalars: overwrite is handled by the caller (object/array
		// merge replaces the child wholesale); a top-level With on a
		// scalar has nothing further to combine.
	}
}

func insertValue(v *Value, pol mergePolicy) *Value {
	if pol.dup {
		return v.Dup()
	}
	return v
}

func mergeArray(dst, src *Value, pol mergePolicy) {
	if !pol.sortItems && len(pol.compareBy) == 0 {
		for _, e := range src.arr {
			dst.Add(insertValue(e, pol))
		}
		return
	}
	compareKey := func(e *Value) *Value {
		if len(pol.compareBy) == 0 {
			return e
		}
		cur := e
		for _, ptr := range pol.compareBy {
			cur = lookupPointer(cur, ptr)
			if cur == nil {
				return nil
			}
		}
		return cur
	}
	less := func(a, b *Value) bool {
		ak, bk := compareKey(a), compareKey(b)
		return valueLess(ak, bk)
	}

	merged := dst.Elements()
	for _, e := range src.arr {
		ek := compareKey(e)
		idx := -1
		for i, m := range merged {
			if Equal(compareKey(m), ek) {
				idx = i
				break
			}
		}
		if idx >= 0 {
			continue
		}
		merged = append(merged, insertValue(e, pol))
	}
	if pol.sortItems {
		sort.SliceStable(merged, func(i, j int) bool { return less(merged[i], merged[j]) })
	}

	dst.arr = nil
	for _, m := range merged {
		dst.Add(m)
	}
}

func mergeObject(dst, src *Value, path string, global mergePolicy, byPath map[string]mergePolicy, pol mergePolicy) {
	for _, k := range src.keys {
		sv := src.obj[k]
		childPath := path + "/" + escapePointerToken(k)
		if existing, ok := dst.obj[k]; ok && pol.merge && existing.Kind() == sv.Kind() &&
			(existing.Kind() == KindObject || existing.Kind() == KindArray) {
			mergeAt(existing, sv, childPath, global, byPath)
			continue
		}
		dst.Set(k, insertValue(sv, pol))
	}
}

func escapePointerToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~", "~0")
	tok = strings.ReplaceAll(tok, "/", "~1")
	return tok
}

// lookupPointer performs a best-effort JSON Pointer lookup used only
// by the merge engine's compareBy option; malformed or missing paths
// simply yield nil rather than failing the merge.
func lookupPointer(v *Value, ptr string) *Value {
	if ptr == "" {
		return v
	}
	cur := v
	for _, tok := range strings.Split(strings.TrimPrefix(ptr, "/"), "/") {
		tok = strings.ReplaceAll(tok, "~1", "/")
		tok = strings.ReplaceAll(tok, "~0", "~")
		if cur == nil {
			return nil
		}
		switch cur.Kind() {
		case KindObject:
			cur = cur.obj[tok]
		default:
			return nil
		}
	}
	return cur
}

func valueLess(a, b *Value) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	if a.Kind() == KindNumber && b.Kind() == KindNumber {
		return a.num.Float64() < b.num.Float64()
	}
	if a.Kind() == KindString && b.Kind() == KindString {
		return a.str < b.str
	}
	return a.String() < b.String()
}
