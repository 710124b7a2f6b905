package jsonv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKindPredicates(t *testing.T) {
	cases := []struct {
		name string
		v    *Value
		kind Kind
	}{
		{"null", Null(), KindNull},
		{"bool", Bool(true), KindBool},
		{"number", NumberOf(1.5), KindNumber},
		{"string", String("x"), KindString},
		{"array", Array(), KindArray},
		{"object", Object(), KindObject},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.kind, c.v.Kind())
		})
	}
}

func TestArrayMutation(t *testing.T) {
	a := Array()
	a.Add(IntOf(1)).Add(IntOf(2)).Add(IntOf(3))
	require.Equal(t, 3, a.Len())
	assert.Equal(t, int64(2), a.At(1).NumberValue().i)

	removed := a.AtDel(0)
	assert.Equal(t, int64(1), removed.NumberValue().i)
	assert.Equal(t, 2, a.Len())
	assert.Nil(t, removed.Up())
}

func TestObjectMutation(t *testing.T) {
	o := Object()
	o.Set("a", IntOf(1)).Set("b", IntOf(2))
	assert.True(t, o.Has("a"))
	assert.False(t, o.Has("z"))
	assert.ElementsMatch(t, []string{"a", "b"}, o.Keys())

	o.DelAt("a")
	assert.False(t, o.Has("a"))
}

func TestParentLinkage(t *testing.T) {
	container := Array()
	child := String("x")
	container.Add(child)
	assert.Same(t, container, child.Up())

	container.AtDel(0)
	assert.Nil(t, child.Up())

	dup := container.Dup()
	assert.Nil(t, dup.Up())
}

func TestAtDefaultInsertsOnMiss(t *testing.T) {
	o := Object()
	v := o.AtDefault("k", IntOf(7))
	assert.Equal(t, int64(7), v.NumberValue().i)
	assert.True(t, o.Has("k"))

	v2 := o.AtDefault("k", IntOf(9))
	assert.Equal(t, int64(7), v2.NumberValue().i)
}

func TestEqualityIgnoresKeyOrder(t *testing.T) {
	a := Object().Set("x", IntOf(1)).Set("y", IntOf(2))
	b := Object().Set("y", IntOf(2)).Set("x", IntOf(1))
	assert.True(t, Equal(a, b))
}

func TestEqualityNumberCrossesIntFloat(t *testing.T) {
	assert.True(t, Equal(IntOf(1), NumberOf(1.0)))
}

func TestAtOutOfRangePanics(t *testing.T) {
	a := Array().Add(IntOf(1))
	assert.Panics(t, func() { a.At(5) })
}
