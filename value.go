package jsonv

import "fmt"

// Value is a dynamic JSON value: exactly one of the six JSON kinds.
// The zero Value is a null.
//
// A Value tracks the container it is currently stored in via parent,
// a non-owning back-reference updated by Set/Add/DelAt and friends. It
// participates in no ownership decision: the container is the owner,
// and Dup breaks the link entirely.
type Value struct {
	kind   Kind
	parent *Value

	b   bool
	num Number
	str string
	arr []*Value

	// obj/keys together implement an order-preserving map: keys holds
	// insertion order, obj the lookup table. Serialization order is
	// stable within one Value but not otherwise meaningful.
	obj  map[string]*Value
	keys []string
}

// Null returns a new null Value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a new boolean Value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NumberOf returns a new number Value from a native Go number.
func NumberOf(n float64) *Value { return &Value{kind: KindNumber, num: NewNumberFromFloat64(n)} }

// IntOf returns a new integer-kind number Value.
func IntOf(n int64) *Value { return &Value{kind: KindNumber, num: NewNumberFromInt64(n)} }

// numberValue wraps an already-constructed Number, used by the reader.
func numberValue(n Number) *Value { return &Value{kind: KindNumber, num: n} }

// String returns a new string Value.
func String(s string) *Value { return &Value{kind: KindString, str: s} }

// Array returns a new empty array Value.
func Array() *Value { return &Value{kind: KindArray, arr: nil} }

// Object returns a new empty object Value.
func Object() *Value { return &Value{kind: KindObject, obj: map[string]*Value{}} }

// Kind reports which of the six JSON kinds v holds.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool   { return v.Kind() == KindNull }
func (v *Value) IsBool() bool   { return v.Kind() == KindBool }
func (v *Value) IsNumber() bool { return v.Kind() == KindNumber }
func (v *Value) IsString() bool { return v.Kind() == KindString }
func (v *Value) IsArray() bool  { return v.Kind() == KindArray }
func (v *Value) IsObject() bool { return v.Kind() == KindObject }

// Up returns the enclosing container, or nil if v is not currently
// held by one.
func (v *Value) Up() *Value {
	if v == nil {
		return nil
	}
	return v.parent
}

// BoolValue returns the wrapped boolean. Panics via ErrWrongKind
// wrapping if v is not a bool.
func (v *Value) BoolValue() bool {
	if v.Kind() != KindBool {
		panic(fmt.Errorf("%w: BoolValue on %s", ErrWrongKind, v.Kind()))
	}
	return v.b
}

// NumberValue returns the wrapped Number.
func (v *Value) NumberValue() Number {
	if v.Kind() != KindNumber {
		panic(fmt.Errorf("%w: NumberValue on %s", ErrWrongKind, v.Kind()))
	}
	return v.num
}

// StringValue returns the wrapped string.
func (v *Value) StringValue() string {
	if v.Kind() != KindString {
		panic(fmt.Errorf("%w: StringValue on %s", ErrWrongKind, v.Kind()))
	}
	return v.str
}

// Len returns the number of elements (array) or properties (object).
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.keys)
	default:
		panic(fmt.Errorf("%w: Len on %s", ErrWrongKind, v.Kind()))
	}
}

// At returns the element at index i of an array, or the property named
// by key (a string) of an object. For a missing object key it returns
// nil rather than failing; for an out-of-range array index it panics
// with ErrIndexOutOfRange.
func (v *Value) At(key interface{}) *Value {
	switch k := key.(type) {
	case int:
		if v.Kind() != KindArray {
			panic(fmt.Errorf("%w: At(int) on %s", ErrWrongKind, v.Kind()))
		}
		if k < 0 || k >= len(v.arr) {
			panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, k, len(v.arr)))
		}
		return v.arr[k]
	case string:
		if v.Kind() != KindObject {
			panic(fmt.Errorf("%w: At(string) on %s", ErrWrongKind, v.Kind()))
		}
		return v.obj[k]
	default:
		panic(fmt.Errorf("%w: At key of type %T", ErrWrongKind, key))
	}
}

// AtDefault returns the property named key, inserting def if absent.
// This is a mutating read, for the common pattern of lazily
// materializing a nested object or array the first time it's touched.
func (v *Value) AtDefault(key string, def *Value) *Value {
	if v.Kind() != KindObject {
		panic(fmt.Errorf("%w: AtDefault on %s", ErrWrongKind, v.Kind()))
	}
	if existing, ok := v.obj[key]; ok {
		return existing
	}
	v.Set(key, def)
	return def
}

// Has reports whether an object has the given key.
func (v *Value) Has(key string) bool {
	if v.Kind() != KindObject {
		panic(fmt.Errorf("%w: Has on %s", ErrWrongKind, v.Kind()))
	}
	_, ok := v.obj[key]
	return ok
}

// Keys returns the object's property names in insertion order. The
// returned slice is a copy; mutating it does not affect v.
func (v *Value) Keys() []string {
	if v.Kind() != KindObject {
		panic(fmt.Errorf("%w: Keys on %s", ErrWrongKind, v.Kind()))
	}
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Elements returns an array's elements. The returned slice is a copy
// of the element pointers; mutating the slice does not affect v.
func (v *Value) Elements() []*Value {
	if v.Kind() != KindArray {
		panic(fmt.Errorf("%w: Elements on %s", ErrWrongKind, v.Kind()))
	}
	out := make([]*Value, len(v.arr))
	copy(out, v.arr)
	return out
}

// setParent points child's back-reference at v, replacing any previous
// one; it does not remove child from a container that still holds it.
// A nil child is a no-op.
func setParent(child *Value, v *Value) {
	if child == nil {
		return
	}
	child.parent = v
}

// Add appends v2 to an array and returns the receiver.
func (v *Value) Add(v2 *Value) *Value {
	if v.Kind() != KindArray {
		panic(fmt.Errorf("%w: Add on %s", ErrWrongKind, v.Kind()))
	}
	v.arr = append(v.arr, v2)
	setParent(v2, v)
	return v
}

// SetAt replaces the array element at index i and returns the receiver.
func (v *Value) SetAt(i int, v2 *Value) *Value {
	if v.Kind() != KindArray {
		panic(fmt.Errorf("%w: SetAt on %s", ErrWrongKind, v.Kind()))
	}
	if i < 0 || i >= len(v.arr) {
		panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(v.arr)))
	}
	if old := v.arr[i]; old != nil && old.parent == v {
		old.parent = nil
	}
	v.arr[i] = v2
	setParent(v2, v)
	return v
}

// DelAt removes the array element at index i, or the object property
// named by a string key, and returns the receiver.
func (v *Value) DelAt(key interface{}) *Value {
	v.AtDel(key)
	return v
}

// AtDel removes and returns the array element at index i, or the
// object property named by a string key (nil if absent).
func (v *Value) AtDel(key interface{}) *Value {
	switch k := key.(type) {
	case int:
		if v.Kind() != KindArray {
			panic(fmt.Errorf("%w: AtDel(int) on %s", ErrWrongKind, v.Kind()))
		}
		if k < 0 || k >= len(v.arr) {
			panic(fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, k, len(v.arr)))
		}
		removed := v.arr[k]
		v.arr = append(v.arr[:k], v.arr[k+1:]...)
		if removed != nil && removed.parent == v {
			removed.parent = nil
		}
		return removed
	case string:
		if v.Kind() != KindObject {
			panic(fmt.Errorf("%w: AtDel(string) on %s", ErrWrongKind, v.Kind()))
		}
		removed, ok := v.obj[k]
		if !ok {
			return nil
		}
		delete(v.obj, k)
		for i, kk := range v.keys {
			if kk == k {
				v.keys = append(v.keys[:i], v.keys[i+1:]...)
				break
			}
		}
		if removed != nil && removed.parent == v {
			removed.parent = nil
		}
		return removed
	default:
		panic(fmt.Errorf("%w: AtDel key of type %T", ErrWrongKind, key))
	}
}

// Remove removes the first array element structurally equal to v2 and
// returns the receiver. A no-op if no such element exists.
func (v *Value) Remove(v2 *Value) *Value {
	if v.Kind() != KindArray {
		panic(fmt.Errorf("%w: Remove on %s", ErrWrongKind, v.Kind()))
	}
	for i, e := range v.arr {
		if Equal(e, v2) {
			v.AtDel(i)
			break
		}
	}
	return v
}

// Set assigns the object property key to v2 and returns the receiver.
func (v *Value) Set(key string, v2 *Value) *Value {
	if v.Kind() != KindObject {
		panic(fmt.Errorf("%w: Set on %s", ErrWrongKind, v.Kind()))
	}
	if old, ok := v.obj[key]; ok {
		if old != nil && old.parent == v {
			old.parent = nil
		}
	} else {
		v.keys = append(v.keys, key)
	}
	v.obj[key] = v2
	setParent(v2, v)
	return v
}

// Dup returns a deep copy of v. The copy has no parent, and every
// descendant node is freshly allocated so reattaching the copy
// elsewhere cannot corrupt the original's parent links.
func (v *Value) Dup() *Value {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindNull:
		return Null()
	case KindBool:
		return Bool(v.b)
	case KindNumber:
		return numberValue(v.num)
	case KindString:
		return String(v.str)
	case KindArray:
		out := Array()
		for _, e := range v.arr {
			out.Add(e.Dup())
		}
		return out
	case KindObject:
		out := Object()
		for _, k := range v.keys {
			out.Set(k, v.obj[k].Dup())
		}
		return out
	default:
		panic(fmt.Errorf("%w: Dup on unknown kind", ErrWrongKind))
	}
}
