// Package jsonv implements a dynamic JSON value with a tolerant reader,
// a precision-preserving writer, and a structural merge operation.
//
// A Value is a tagged union of the six JSON kinds. Unlike decoding into
// interface{}, a Value keeps track of its own parent container and
// preserves arbitrary-precision numbers exactly as they were written.
//
// Schema compilation and validation live in the jsonv/schema subpackage;
// JSON Pointer and URI resolution live in jsonv/pointer.
package jsonv
