package jsonv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicValues(t *testing.T) {
	v, err := Parse(`{"a":1,"b":[true,false,null],"c":"hi"}`)
	require.NoError(t, err)
	require.True(t, v.IsObject())
	assert.Equal(t, int64(1), v.At("a").NumberValue().i)
	assert.True(t, v.At("b").At(0).BoolValue())
	assert.True(t, v.At("c").IsString())
}

func TestParseTolerantComments(t *testing.T) {
	plain, err := Parse(`{"a":1,"b":2}`)
	require.NoError(t, err)

	commented, err := Parse(`{
		// a comes first
		"a": 1,
		/* b is second */
		"b": 2
	}`)
	require.NoError(t, err)
	assert.True(t, Equal(plain, commented))
}

func TestParseSurrogatePair(t *testing.T) {
	v, err := Parse(`"😀"`)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", v.StringValue())
}

func TestParseSurrogatePairEscapeSequence(t *testing.T) {
	v, err := Parse("\"" + "\\uD83D\\uDE00" + "\"")
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", v.StringValue())
}

func TestParseBigInteger(t *testing.T) {
	lit := "123456789012345678901234567890"
	v, err := Parse(lit)
	require.NoError(t, err)
	require.True(t, v.IsNumber())
	assert.Equal(t, lit, v.NumberValue().String())
}

func TestParseTrailingDataFails(t *testing.T) {
	_, err := Parse(`1 2`)
	assert.Error(t, err)
}

func TestParseUnterminatedStringFails(t *testing.T) {
	_, err := Parse(`"abc`)
	assert.Error(t, err)
}

func TestParseRejectsUnquotedKey(t *testing.T) {
	_, err := Parse(`{a:1}`)
	assert.Error(t, err)
}

func TestRoundTripEquality(t *testing.T) {
	inputs := []string{
		`null`, `true`, `false`, `0`, `-12.5`, `"x\ny"`,
		`[1,2,3]`, `{"a":{"b":[1,2]}}`,
	}
	for _, in := range inputs {
		v, err := Parse(in)
		require.NoError(t, err)
		serialized := v.String()
		v2, err := Parse(serialized)
		require.NoError(t, err)
		assert.True(t, Equal(v, v2), "round-trip mismatch for %q -> %q", in, serialized)
	}
}
