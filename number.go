package jsonv

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// bigIntDigits/bigFloatDigits are the thresholds past which a number
// literal is kept as arbitrary precision instead of a native int64 or
// float64. Chosen to match the guarantees int64 (up to 19 digits) and
// float64 (up to ~15-17 significant decimal digits) can hold exactly.
const (
	bigIntDigits   = 20
	bigFloatDigits = 17
)

// Number is the internal representation backing a KindNumber Value. It
// keeps the exact source literal for arbitrary-precision values (so
// Format/serialization round-trips) while also exposing an approximate
// float64 view for comparisons, matching how Value equality is defined
// for numbers.
type Number struct {
	isInt  bool
	i      int64
	f      float64
	lit    string
	bigInt *big.Int
	bigFlt *big.Float
}

// NewNumberFromInt64 builds a native integer Number.
func NewNumberFromInt64(v int64) Number {
	return Number{isInt: true, i: v}
}

// NewNumberFromFloat64 builds a native floating point Number.
func NewNumberFromFloat64(v float64) Number {
	return Number{isInt: false, f: v}
}

// parseNumberLiteral classifies and parses a JSON number literal as
// produced by the reader. It decides int-vs-float and native-vs-big
// purely from the literal's shape, promoting to arbitrary precision by
// digit count so exact numeric comparison never loses precision to a
// float64 round trip.
func parseNumberLiteral(lit string) (Number, error) {
	isFloat := strings.ContainsAny(lit, ".eE")
	neg := strings.HasPrefix(lit, "-")
	digits := lit
	if neg {
		digits = digits[1:]
	}
	if e := strings.IndexAny(digits, "eE"); e >= 0 {
		digits = digits[:e]
	}
	digits = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, digits)

	if !isFloat {
		if len(digits) < bigIntDigits {
			i, err := strconv.ParseInt(lit, 10, 64)
			if err == nil {
				return Number{isInt: true, i: i, lit: lit}, nil
			}
		}
		bi, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return Number{}, ErrInvalidNumber
		}
		return Number{isInt: true, lit: lit, bigInt: bi}, nil
	}

	significant := strings.TrimLeft(digits, "0")
	if len(significant) < bigFloatDigits {
		f, err := strconv.ParseFloat(lit, 64)
		if err == nil {
			return Number{isInt: false, f: f, lit: lit}, nil
		}
	}
	bf, _, err := big.ParseFloat(lit, 10, 200, big.ToNearestEven)
	if err != nil {
		return Number{}, ErrInvalidNumber
	}
	return Number{isInt: false, lit: lit, bigFlt: bf}, nil
}

// IsInteger reports whether the number was parsed (or constructed) as
// an integer literal, i.e. without a fraction or exponent.
func (n Number) IsInteger() bool {
	return n.isInt
}

// Int64 returns the number's value truncated to an int64. For values
// backed by a big.Int this narrows (possibly losing precision); used
// only where an approximate native value is convenient, e.g. in tests
// and diagnostics.
func (n Number) Int64() int64 {
	if n.isInt {
		if n.bigInt != nil {
			return n.bigInt.Int64()
		}
		return n.i
	}
	return int64(n.Float64())
}

// IsIntegral reports whether the number's value has zero fractional
// part, regardless of how it was written. This is the sense in which
// a schema "type":"integer" accepts 5.0.
func (n Number) IsIntegral() bool {
	if n.isInt {
		return true
	}
	if n.bigFlt != nil {
		return n.bigFlt.IsInt()
	}
	return n.f == math.Trunc(n.f)
}

// Float64 returns the closest float64 approximation of the number.
// Value equality for numbers is defined in terms of this.
func (n Number) Float64() float64 {
	if n.isInt {
		if n.bigInt != nil {
			f := new(big.Float).SetInt(n.bigInt)
			v, _ := f.Float64()
			return v
		}
		return float64(n.i)
	}
	if n.bigFlt != nil {
		v, _ := n.bigFlt.Float64()
		return v
	}
	return n.f
}

// Rat returns an exact big.Rat representation, used by schema keywords
// (multipleOf, minimum/maximum) that must compare numbers exactly
// rather than via float64 rounding. When the source literal was
// preserved, it is parsed directly into the Rat: most JSON decimals
// (0.01, 0.3, ...) have no exact float64 representation, so building
// the Rat from the float64 field instead would bake in the parser's
// binary rounding and defeat the point of comparing exactly.
func (n Number) Rat() *big.Rat {
	if n.lit != "" {
		if r, ok := new(big.Rat).SetString(n.lit); ok {
			return r
		}
	}
	if n.isInt {
		if n.bigInt != nil {
			return new(big.Rat).SetInt(n.bigInt)
		}
		return new(big.Rat).SetInt64(n.i)
	}
	if n.bigFlt != nil {
		r, _ := n.bigFlt.Rat(nil)
		return r
	}
	r := new(big.Rat)
	r.SetFloat64(n.f)
	return r
}

// String renders the exact literal when one was preserved (arbitrary
// precision values, and any value parsed from text), else formats the
// native representation.
func (n Number) String() string {
	if n.lit != "" {
		return n.lit
	}
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
