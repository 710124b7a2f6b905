package pointer

import (
	"testing"

	"github.com/instancekit/jsonv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateObjectAndArray(t *testing.T) {
	doc, err := jsonv.Parse(`{"a":{"b":[1,2,3]}}`)
	require.NoError(t, err)

	v, err := Evaluate(doc, "/a/b/1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.NumberValue().Int64())
}

func TestEvaluateEscapedTokens(t *testing.T) {
	doc, err := jsonv.Parse(`{"a/b":{"c~d":1}}`)
	require.NoError(t, err)

	v, err := Evaluate(doc, "/a~1b/c~0d")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.NumberValue().Int64())
}

func TestEvaluateMissingKeyFails(t *testing.T) {
	doc, _ := jsonv.Parse(`{"a":1}`)
	_, err := Evaluate(doc, "/missing")
	assert.ErrorIs(t, err, ErrPointerMiss)
}

func TestEvaluateRootPointer(t *testing.T) {
	doc, _ := jsonv.Parse(`{"a":1}`)
	v, err := Evaluate(doc, "")
	require.NoError(t, err)
	assert.Same(t, doc, v)
}

func TestResolveBaseVariants(t *testing.T) {
	cases := []struct {
		base, ref, want string
	}{
		{"http://x.com/a/b", "http://y.com/z", "http://y.com/z"},
		{"http://x.com/a/b", "/c", "http://x.com/c"},
		{"http://x.com/a/b", "c", "http://x.com/a/c"},
		{"http://x.com/a/b", "#frag", "http://x.com/a/b#frag"},
	}
	for _, c := range cases {
		got, err := ResolveBase(c.base, c.ref)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestResolveBaseRequiresAbsoluteWithoutBase(t *testing.T) {
	_, err := ResolveBase("", "relative/path")
	assert.ErrorIs(t, err, ErrNoBaseURI)
}

func TestDocumentURIStripsFragment(t *testing.T) {
	assert.Equal(t, "http://x.com/a", DocumentURI("http://x.com/a#/b/c"))
}
