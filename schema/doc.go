// Package schema compiles a JSON Schema draft-4 document (expressed as
// a jsonv.Value) into a tree of validation instructions and runs them
// against input documents.
//
// The pipeline is: Expand (resolve $ref across documents) -> Compile
// (schema value -> instruction tree) -> Validate (instruction tree,
// document -> Result).
package schema
