package schema

import (
	"testing"

	"github.com/instancekit/jsonv"
	"github.com/instancekit/jsonv/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandLocalPointerRef(t *testing.T) {
	root, err := jsonv.Parse(`{
		"definitions": {"pos": {"type":"number","minimum":0}},
		"properties": {"x": {"$ref":"#/definitions/pos"}}
	}`)
	require.NoError(t, err)

	expanded, err := Expand(root, "", nil)
	require.NoError(t, err)

	xSchema := expanded.At("properties").At("x")
	assert.True(t, xSchema.Has("minimum"))
}

func TestExpandAcrossDocuments(t *testing.T) {
	other, err := jsonv.Parse(`{"type":"string"}`)
	require.NoError(t, err)

	cache := pointer.NewCache(func(uri string) (*jsonv.Value, error) {
		if uri == "http://example.com/other" {
			return other, nil
		}
		return nil, assert.AnError
	})

	root, err := jsonv.Parse(`{"properties":{"x":{"$ref":"http://example.com/other"}}}`)
	require.NoError(t, err)

	expanded, err := Expand(root, "http://example.com/root", cache)
	require.NoError(t, err)
	assert.True(t, expanded.At("properties").At("x").Has("type"))
}

func TestExpandSelfRecursiveRefDoesNotLoopForever(t *testing.T) {
	root, err := jsonv.Parse(`{
		"id":"urn:tree",
		"type":"object",
		"properties":{"children":{"type":"array","items":{"$ref":"urn:tree"}}}
	}`)
	require.NoError(t, err)

	expanded, err := Expand(root, "", nil)
	require.NoError(t, err)

	items := expanded.At("properties").At("children").At("items")
	assert.Same(t, expanded, items)
}
