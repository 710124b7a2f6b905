package jsonv

// Equal reports whether a and b are structurally equal: same kind,
// recursively equal contents. Numbers compare by their float64 value
// so 1 and 1.0 are equal; objects compare ignoring key order.
func Equal(a, b *Value) bool {
	ak, bk := a.Kind(), b.Kind()
	if ak != bk {
		return false
	}
	switch ak {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num.Float64() == b.num.Float64()
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
