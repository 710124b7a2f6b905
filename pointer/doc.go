// Package pointer implements JSON Pointer (RFC 6901) evaluation against
// jsonv.Value, base-URI composition for $ref resolution, and a document
// cache keyed by absolute document URI.
package pointer
