package schema

import (
	"testing"

	"github.com/instancekit/jsonv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileAndValidate(t *testing.T, schemaJSON, docJSON string) *Result {
	t.Helper()
	schemaVal, err := jsonv.Parse(schemaJSON)
	require.NoError(t, err)
	doc, err := jsonv.Parse(docJSON)
	require.NoError(t, err)

	c := NewCompiler()
	v, err := c.Compile(schemaVal, "")
	require.NoError(t, err)
	return v.Validate(doc)
}

func TestTypeIntegerRejectsFloatAndString(t *testing.T) {
	schema := `{"type":"integer"}`
	assert.True(t, compileAndValidate(t, schema, `5`).Ok)
	assert.False(t, compileAndValidate(t, schema, `5.5`).Ok)
	assert.False(t, compileAndValidate(t, schema, `"5"`).Ok)
}

func TestRequiredReportsMissingProperty(t *testing.T) {
	schema := `{"type":"object","required":["a","b"]}`
	res := compileAndValidate(t, schema, `{"a":1}`)
	require.False(t, res.Ok)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "b")
}

func TestRecursiveSchemaViaID(t *testing.T) {
	schema := `{
		"id":"urn:t",
		"type":"object",
		"properties":{"child":{"$ref":"urn:t"}}
	}`
	assert.True(t, compileAndValidate(t, schema, `{"child":{"child":{}}}`).Ok)
	assert.False(t, compileAndValidate(t, schema, `{"child":{"child":"x"}}`).Ok)
}

func TestOneOfExactlyOne(t *testing.T) {
	schema := `{"oneOf":[{"type":"string"},{"type":"number"}]}`
	assert.True(t, compileAndValidate(t, schema, `"a"`).Ok)
	assert.True(t, compileAndValidate(t, schema, `3`).Ok)
	assert.False(t, compileAndValidate(t, schema, `true`).Ok)
	assert.False(t, compileAndValidate(t, schema, `null`).Ok)
}

func TestUniqueItemsReportsDuplicate(t *testing.T) {
	schema := `{"type":"array","uniqueItems":true}`
	res := compileAndValidate(t, schema, `[1,2,2]`)
	require.False(t, res.Ok)
	require.Len(t, res.Errors, 1)
}

func TestPatternPropertiesWithAdditionalPropertiesFalse(t *testing.T) {
	schema := `{"patternProperties":{"^x":{"type":"number"}},"additionalProperties":false}`
	res := compileAndValidate(t, schema, `{"x1":1,"y":2}`)
	require.False(t, res.Ok)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "y")
}

func TestAllOfAccumulatesErrors(t *testing.T) {
	schema := `{"allOf":[{"minLength":3},{"maxLength":1}]}`
	res := compileAndValidate(t, schema, `"ab"`)
	require.False(t, res.Ok)
	assert.Len(t, res.Errors, 2)
}

func TestAdditionalPropertiesDoesNotSeeSiblingSchemaProperties(t *testing.T) {
	schema := `{"additionalProperties":false,"allOf":[{"properties":{"b":{}}}]}`
	res := compileAndValidate(t, schema, `{"b":1}`)
	require.False(t, res.Ok)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "b")
}

func TestExclusiveMinimumBoolean(t *testing.T) {
	schema := `{"minimum":1,"exclusiveMinimum":true}`
	assert.False(t, compileAndValidate(t, schema, `1`).Ok)
	assert.True(t, compileAndValidate(t, schema, `1.0001`).Ok)
}

func TestMultipleOfExactness(t *testing.T) {
	schema := `{"multipleOf":0.01}`
	assert.True(t, compileAndValidate(t, schema, `0.3`).Ok)
	assert.False(t, compileAndValidate(t, schema, `0.105`).Ok)
}

func TestDependenciesSchemaAndArrayForms(t *testing.T) {
	schema := `{
		"dependencies": {
			"credit_card": ["billing_address"],
			"extra": {"required":["note"]}
		}
	}`
	assert.False(t, compileAndValidate(t, schema, `{"credit_card":1}`).Ok)
	assert.True(t, compileAndValidate(t, schema, `{"credit_card":1,"billing_address":"x"}`).Ok)
	assert.False(t, compileAndValidate(t, schema, `{"extra":1}`).Ok)
}

func TestResultValueShape(t *testing.T) {
	res := compileAndValidate(t, `{"type":"string"}`, `1`)
	v := res.Value()
	assert.False(t, v.At("ok").BoolValue())
	assert.Equal(t, 1, v.At("errors").Len())
}
