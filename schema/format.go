package schema

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"time"

	"github.com/instancekit/jsonv"
)

// compileFormat implements the supplemental "format" keyword. Per
// draft-4's SHOULD (not MUST) wording, a mismatch is only reported
// when the Compiler has AssertFormat enabled; otherwise the keyword is
// accepted and ignored, so schemas copied from the wider ecosystem
// never fail validation here by surprise.
func compileFormat(c *Compiler, node *jsonv.Value) (instruction, error) {
	fv := node.At("format")
	if fv == nil {
		return nil, nil
	}
	if !fv.IsString() {
		return nil, fmt.Errorf("%w: \"format\" must be a string", ErrInvalidKeyword)
	}
	name := fv.StringValue()
	fn, ok := c.lookupFormat(name)
	if !ok {
		// Unknown format names are annotations draft-4 explicitly
		// allows producers to invent; accept unconditionally.
		return nil, nil
	}
	assert := c.assertFormat

	return func(_ *evalContext, v *jsonv.Value) []string {
		if !assert || !v.IsString() {
			return nil
		}
		if fn(v) {
			return nil
		}
		return []string{fmt.Sprintf("string does not satisfy format %q", name)}
	}, nil
}

func installBuiltinFormats(c *Compiler) {
	c.formats["date-time"] = func(v *jsonv.Value) bool {
		_, err := time.Parse(time.RFC3339, v.StringValue())
		return err == nil
	}
	c.formats["date"] = func(v *jsonv.Value) bool {
		_, err := time.Parse("2006-01-02", v.StringValue())
		return err == nil
	}
	c.formats["time"] = func(v *jsonv.Value) bool {
		_, err := time.Parse("15:04:05", v.StringValue())
		return err == nil
	}
	c.formats["email"] = func(v *jsonv.Value) bool {
		_, err := mail.ParseAddress(v.StringValue())
		return err == nil
	}
	c.formats["hostname"] = func(v *jsonv.Value) bool {
		s := v.StringValue()
		return s != "" && len(s) <= 255 && net.ParseIP(s) == nil
	}
	c.formats["ipv4"] = func(v *jsonv.Value) bool {
		ip := net.ParseIP(v.StringValue())
		return ip != nil && ip.To4() != nil
	}
	c.formats["ipv6"] = func(v *jsonv.Value) bool {
		ip := net.ParseIP(v.StringValue())
		return ip != nil && ip.To4() == nil
	}
	c.formats["uri"] = func(v *jsonv.Value) bool {
		u, err := url.Parse(v.StringValue())
		return err == nil && u.IsAbs()
	}
	c.formats["uri-reference"] = func(v *jsonv.Value) bool {
		_, err := url.Parse(v.StringValue())
		return err == nil
	}
	c.formats["json-pointer"] = func(v *jsonv.Value) bool {
		s := v.StringValue()
		return s == "" || s[0] == '/'
	}
	c.formats["regex"] = func(v *jsonv.Value) bool {
		_, err := compileRegex(v.StringValue())
		return err == nil
	}
	c.formats["uuid"] = func(v *jsonv.Value) bool {
		s := v.StringValue()
		if len(s) != 36 {
			return false
		}
		for i, r := range s {
			switch i {
			case 8, 13, 18, 23:
				if r != '-' {
					return false
				}
			default:
				if !isHex(r) {
					return false
				}
			}
		}
		return true
	}
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
