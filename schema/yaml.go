package schema

import "github.com/instancekit/jsonv"

// CompileYAML decodes a YAML-authored schema document and compiles it,
// so schemas copied from ecosystem tooling that prefers YAML over JSON
// need no separate code path through Compile.
func (c *Compiler) CompileYAML(data []byte, baseURI string) (*Validator, error) {
	schemaVal, err := jsonv.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return c.Compile(schemaVal, baseURI)
}
