package pointer

import (
	"fmt"
	"net/url"
)

// ResolveBase composes a reference string against a base URI following
// draft-4 $ref resolution rules. Both base and ref may carry a
// fragment; the result carries ref's fragment, and a fragment on base
// is dropped. An empty base requires ref to be absolute, except that a
// bare fragment (or empty ref) is returned unchanged.
func ResolveBase(base, ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPointer, err)
	}
	if refURL.IsAbs() {
		return refURL.String(), nil
	}
	if base == "" {
		if ref == "" || (refURL.Path == "" && refURL.RawQuery == "") {
			// A bare fragment with no base is legal: it refers to the
			// current (unspecified) document and is resolved by the
			// caller against whatever root it already has in hand.
			return ref, nil
		}
		return "", fmt.Errorf("%w: reference %q", ErrNoBaseURI, ref)
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPointer, err)
	}
	resolved := baseURL.ResolveReference(refURL)
	return resolved.String(), nil
}

// DocumentURI strips the fragment from a URI, yielding the identity
// used to key the document cache.
func DocumentURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

// SplitFragment separates uri into its document identity and fragment
// (without the leading "#").
func SplitFragment(uri string) (doc string, fragment string) {
	u, err := url.Parse(uri)
	if err != nil {
		return uri, ""
	}
	fragment = u.Fragment
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), fragment
}
