package pointer

import (
	"fmt"

	"github.com/instancekit/jsonv"
	"github.com/kaptinlin/jsonpointer"
)

// Evaluate resolves a JSON Pointer (RFC 6901, fragment already
// stripped of its leading "#" if any) against root, following object
// keys and array indices. Token splitting and ~0/~1 unescaping is
// delegated to jsonpointer.Parse; this package owns only the
// traversal against jsonv.Value, which that library knows nothing
// about.
func Evaluate(root *jsonv.Value, ptr string) (*jsonv.Value, error) {
	tokens, err := jsonpointer.Parse(ptr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPointer, err)
	}
	cur := root
	for _, tok := range tokens {
		cur, err = step(cur, tok)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func step(cur *jsonv.Value, tok string) (*jsonv.Value, error) {
	if cur == nil {
		return nil, ErrPointerMiss
	}
	switch cur.Kind() {
	case jsonv.KindObject:
		next := cur.At(tok)
		if next == nil {
			return nil, fmt.Errorf("%w: no property %q", ErrPointerMiss, tok)
		}
		return next, nil
	case jsonv.KindArray:
		idx, err := parseArrayIndex(tok, cur.Len())
		if err != nil {
			return nil, err
		}
		return cur.At(idx), nil
	default:
		return nil, fmt.Errorf("%w: cannot descend into %s with token %q", ErrPointerMiss, cur.Kind(), tok)
	}
}

func parseArrayIndex(tok string, length int) (int, error) {
	if tok == "-" {
		return 0, fmt.Errorf("%w: \"-\" append token is not a resolvable index", ErrPointerMiss)
	}
	n := 0
	if tok == "" {
		return 0, fmt.Errorf("%w: empty array index", ErrPointerMiss)
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: non-numeric array index %q", ErrPointerMiss, tok)
		}
		n = n*10 + int(c-'0')
	}
	if tok[0] == '0' && len(tok) > 1 {
		return 0, fmt.Errorf("%w: leading zero in array index %q", ErrPointerMiss, tok)
	}
	if n >= length {
		return 0, fmt.Errorf("%w: index %d out of range (length %d)", ErrPointerMiss, n, length)
	}
	return n, nil
}
