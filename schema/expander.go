package schema

import (
	"fmt"

	"github.com/instancekit/jsonv"
	"github.com/instancekit/jsonv/pointer"
)

// Expand walks root, resolving every $ref it finds (including into
// other documents, via docs) and replacing $ref nodes in place with
// their resolved target. A draft-4 "id" property changes the base URI
// used to resolve refs found within its subtree. docs may be nil if
// root is known to be self-contained.
//
// Expansion mutates root's graph in place and returns it (or, if root
// itself is a $ref, the node it resolves to).
func Expand(root *jsonv.Value, baseURI string, docs *pointer.Cache) (*jsonv.Value, error) {
	e := &expander{
		docs:       docs,
		docRoots:   map[string]*jsonv.Value{},
		expanded:   map[*jsonv.Value]bool{},
		resolved:   map[string]*jsonv.Value{},
		inProgress: map[string]*jsonv.Value{},
	}
	docKey := pointer.DocumentURI(baseURI)
	e.docRoots[docKey] = root
	e.docRoots[""] = root
	return e.expand(root, baseURI)
}

type expander struct {
	docs       *pointer.Cache
	docRoots   map[string]*jsonv.Value
	expanded   map[*jsonv.Value]bool
	resolved   map[string]*jsonv.Value
	inProgress map[string]*jsonv.Value
}

func (e *expander) expand(node *jsonv.Value, base string) (*jsonv.Value, error) {
	if node == nil || !node.IsObject() {
		return nil, ErrNotObjectSchema
	}
	if e.expanded[node] {
		return node, nil
	}

	if idVal := node.At("id"); idVal != nil && idVal.IsString() {
		resolvedBase, err := pointer.ResolveBase(base, idVal.StringValue())
		if err != nil {
			return nil, err
		}
		base = resolvedBase
		// Register node as the document reachable at its own id, so a
		// same-document $ref naming that id (with no fragment, or one
		// evaluated against this subtree) resolves back here instead of
		// falling through to the external fetcher.
		e.docRoots[base] = node
	}

	if refVal := node.At("$ref"); refVal != nil && refVal.IsString() {
		return e.expandRef(refVal.StringValue(), base)
	}

	e.expanded[node] = true
	if err := e.expandChildren(node, base); err != nil {
		return nil, err
	}
	return node, nil
}

func (e *expander) expandRef(ref string, base string) (*jsonv.Value, error) {
	absRef, err := pointer.ResolveBase(base, ref)
	if err != nil {
		return nil, err
	}
	if target, ok := e.resolved[absRef]; ok {
		return target, nil
	}
	if target, ok := e.inProgress[absRef]; ok {
		return target, nil
	}

	target, targetBase, err := e.resolveRef(absRef)
	if err != nil {
		return nil, err
	}
	e.inProgress[absRef] = target
	expanded, err := e.expand(target, targetBase)
	if err != nil {
		return nil, err
	}
	delete(e.inProgress, absRef)
	e.resolved[absRef] = expanded
	return expanded, nil
}

// resolveRef locates the schema node an absolute ref (document URI
// plus optional JSON-Pointer fragment) points to, fetching the
// document first if it is not the one currently being expanded.
func (e *expander) resolveRef(absRef string) (target *jsonv.Value, targetBase string, err error) {
	docURI, fragment := pointer.SplitFragment(absRef)

	root, ok := e.docRoots[docURI]
	if !ok {
		if e.docs == nil {
			return nil, "", fmt.Errorf("%w: %q", ErrRefNotFound, absRef)
		}
		doc, ferr := e.docs.Get(docURI)
		if ferr != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrRefNotFound, ferr)
		}
		root = doc
		e.docRoots[docURI] = root
	}

	if fragment == "" {
		return root, docURI, nil
	}
	t, perr := pointer.Evaluate(root, fragment)
	if perr != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRefNotFound, perr)
	}
	if !t.IsObject() {
		return nil, "", ErrNotObjectSchema
	}
	return t, docURI, nil
}

// expandChildren recurses into every keyword known to carry nested
// schemas for draft-4, leaving instance-data-bearing keywords (enum,
// required, default, ...) untouched.
func (e *expander) expandChildren(node *jsonv.Value, base string) error {
	for _, name := range [...]string{"allOf", "anyOf", "oneOf"} {
		arr := node.At(name)
		if arr == nil || !arr.IsArray() {
			continue
		}
		for i, el := range arr.Elements() {
			if !el.IsObject() {
				continue
			}
			ne, err := e.expand(el, base)
			if err != nil {
				return err
			}
			arr.SetAt(i, ne)
		}
	}

	if not := node.At("not"); not != nil && not.IsObject() {
		ne, err := e.expand(not, base)
		if err != nil {
			return err
		}
		node.Set("not", ne)
	}

	for _, name := range [...]string{"properties", "patternProperties", "definitions"} {
		obj := node.At(name)
		if obj == nil || !obj.IsObject() {
			continue
		}
		for _, k := range obj.Keys() {
			child := obj.At(k)
			if !child.IsObject() {
				continue
			}
			ne, err := e.expand(child, base)
			if err != nil {
				return err
			}
			obj.Set(k, ne)
		}
	}

	for _, name := range [...]string{"additionalProperties", "additionalItems"} {
		child := node.At(name)
		if child != nil && child.IsObject() {
			ne, err := e.expand(child, base)
			if err != nil {
				return err
			}
			node.Set(name, ne)
		}
	}

	if items := node.At("items"); items != nil {
		switch {
		case items.IsObject():
			ne, err := e.expand(items, base)
			if err != nil {
				return err
			}
			node.Set("items", ne)
		case items.IsArray():
			for i, el := range items.Elements() {
				if !el.IsObject() {
					continue
				}
				ne, err := e.expand(el, base)
				if err != nil {
					return err
				}
				items.SetAt(i, ne)
			}
		}
	}

	if deps := node.At("dependencies"); deps != nil && deps.IsObject() {
		for _, k := range deps.Keys() {
			v := deps.At(k)
			if v != nil && v.IsObject() {
				ne, err := e.expand(v, base)
				if err != nil {
					return err
				}
				deps.Set(k, ne)
			}
		}
	}

	return nil
}
