package jsonv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithArrayAppends(t *testing.T) {
	a := Array().Add(IntOf(1)).Add(IntOf(2))
	b := Array().Add(IntOf(3))
	a.With(b)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, int64(3), a.At(2).NumberValue().i)
}

func TestWithObjectShallowOverwrite(t *testing.T) {
	a := Object().Set("x", IntOf(1)).Set("y", IntOf(2))
	b := Object().Set("y", IntOf(99)).Set("z", IntOf(3))
	a.With(b)
	assert.Equal(t, int64(1), a.At("x").NumberValue().i)
	assert.Equal(t, int64(99), a.At("y").NumberValue().i)
	assert.Equal(t, int64(3), a.At("z").NumberValue().i)
}

func TestWithKindMismatchPanics(t *testing.T) {
	a := Array()
	b := Object()
	assert.Panics(t, func() { a.With(b) })
}

func TestWithDeepMergeViaPathRule(t *testing.T) {
	a := Object().Set("nested", Object().Set("x", IntOf(1)))
	b := Object().Set("nested", Object().Set("y", IntOf(2)))
	a.With(b, PathRule{For: []string{""}, Merge: true})
	nested := a.At("nested")
	assert.Equal(t, int64(1), nested.At("x").NumberValue().i)
	assert.Equal(t, int64(2), nested.At("y").NumberValue().i)
}

func TestWithDupCopiesInsertedValues(t *testing.T) {
	shared := IntOf(7)
	a := Array()
	b := Array().Add(shared)
	a.With(b, Dup())
	assert.NotSame(t, shared, a.At(0))
	assert.True(t, Equal(shared, a.At(0)))
}

func TestWithSortedUnionDedupes(t *testing.T) {
	a := Array().Add(IntOf(3)).Add(IntOf(1))
	b := Array().Add(IntOf(1)).Add(IntOf(2))
	a.With(b, Sort())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, int64(1), a.At(0).NumberValue().i)
	assert.Equal(t, int64(2), a.At(1).NumberValue().i)
	assert.Equal(t, int64(3), a.At(2).NumberValue().i)
}
