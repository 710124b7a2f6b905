package schema

import (
	"testing"

	"github.com/instancekit/jsonv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIsNonAssertingByDefault(t *testing.T) {
	schemaVal, err := jsonv.Parse(`{"format":"email"}`)
	require.NoError(t, err)
	doc, _ := jsonv.Parse(`"not-an-email"`)

	c := NewCompiler()
	v, err := c.Compile(schemaVal, "")
	require.NoError(t, err)
	assert.True(t, v.Validate(doc).Ok)
}

func TestFormatAssertsWhenEnabled(t *testing.T) {
	schemaVal, err := jsonv.Parse(`{"format":"email"}`)
	require.NoError(t, err)
	doc, _ := jsonv.Parse(`"not-an-email"`)

	c := NewCompiler().WithAssertFormat(true)
	v, err := c.Compile(schemaVal, "")
	require.NoError(t, err)
	assert.False(t, v.Validate(doc).Ok)

	good, _ := jsonv.Parse(`"a@b.com"`)
	assert.True(t, v.Validate(good).Ok)
}

func TestCustomFormatRegistration(t *testing.T) {
	c := NewCompiler().WithAssertFormat(true)
	c.RegisterFormat("even-length", func(v *jsonv.Value) bool {
		return len(v.StringValue())%2 == 0
	})
	schemaVal, _ := jsonv.Parse(`{"format":"even-length"}`)
	v, err := c.Compile(schemaVal, "")
	require.NoError(t, err)
	assert.True(t, v.Validate(mustParse(t, `"ab"`)).Ok)
	assert.False(t, v.Validate(mustParse(t, `"abc"`)).Ok)
}

func mustParse(t *testing.T, s string) *jsonv.Value {
	t.Helper()
	v, err := jsonv.Parse(s)
	require.NoError(t, err)
	return v
}
