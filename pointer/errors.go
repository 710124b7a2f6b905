package pointer

import "errors"

var (
	// ErrMalformedPointer is returned when a pointer string cannot be
	// tokenized (bad ~ escape, for instance).
	ErrMalformedPointer = errors.New("pointer: malformed JSON pointer")

	// ErrPointerMiss is returned when traversal cannot follow a token:
	// the key is absent, the index is out of range, or a scalar is
	// asked to descend further.
	ErrPointerMiss = errors.New("pointer: cannot resolve pointer against document")

	// ErrNoBaseURI is returned when a relative reference is resolved
	// without any base URI in scope.
	ErrNoBaseURI = errors.New("pointer: relative reference has no base URI")

	// ErrFetchFailed is returned by a Cache when its fetcher callback
	// fails to retrieve a remote document.
	ErrFetchFailed = errors.New("pointer: failed to fetch referenced document")
)
