package schema

import "errors"

var (
	// ErrNotObjectSchema is returned when a schema node is neither an
	// object nor (for nested subschemas) absent. Draft-4 does not
	// support the boolean-schema shorthand 2020-12 introduces.
	ErrNotObjectSchema = errors.New("schema: schema value must be a JSON object")

	// ErrRefNotFound is returned when a $ref's target document or
	// pointer cannot be located.
	ErrRefNotFound = errors.New("schema: $ref target not found")

	// ErrInvalidKeyword is returned when a recognised keyword carries
	// a value of the wrong shape (e.g. "required" that isn't an array
	// of strings).
	ErrInvalidKeyword = errors.New("schema: invalid keyword value")

	// ErrBadPattern is returned when a "pattern" or patternProperties
	// key fails to compile as a regular expression.
	ErrBadPattern = errors.New("schema: invalid regular expression")
)
