package jsonv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLMatchesEquivalentJSON(t *testing.T) {
	y := []byte("a: 1\nb:\n  - x\n  - y\n")
	fromYAML, err := ParseYAML(y)
	require.NoError(t, err)

	fromJSON, err := Parse(`{"a":1,"b":["x","y"]}`)
	require.NoError(t, err)

	assert.True(t, Equal(fromYAML, fromJSON))
}
