package schema

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// compileRegex compiles an ECMA-262-flavored pattern using regexp2
// rather than the standard library's RE2-based regexp: draft-4's
// "pattern" and "patternProperties" keys are specified in terms of
// ECMA-262 RegExp semantics (substring search, with backreferences and
// lookaround real-world schemas rely on), which RE2 cannot express.
func compileRegex(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPattern, err)
	}
	return re, nil
}

// regexFind reports whether re matches anywhere within s, i.e. the
// ECMA-262 RegExp.test/find semantics draft-4 specifies for "pattern"
// -- not a full-string match.
func regexFind(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	if err != nil {
		return false
	}
	return ok
}
