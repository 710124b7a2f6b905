package jsonv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterEscapesForwardSlash(t *testing.T) {
	assert.Equal(t, "\"a\\/b\"", String("a/b").String())
}

func TestWriterEscapesLineSeparator(t *testing.T) {
	s := String("\u2028").String()
	assert.Equal(t, "\"\\u2028\"", s)
}

func TestWriterEscapesSupplementaryAsSurrogatePair(t *testing.T) {
	s := String("\U0001F600").String()
	assert.Equal(t, "\"\\ud83d\\ude00\"", s)
}

func TestWriterTruncatesWithEllipsis(t *testing.T) {
	v, _ := Parse(`["aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"]`)
	out := v.ToString(10)
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.LessOrEqual(t, len(out), 10)
}

func TestPadWrapsCallback(t *testing.T) {
	v := IntOf(5)
	assert.Equal(t, "cb(5);", v.Pad("cb"))
	assert.Equal(t, "5", v.Pad(""))
}
