// Package qname implements the TSDP qualified-name grammar: a small,
// table-driven string format identifying a metric plus an unordered set of
// key/value tags, used throughout TSDP messages to name what a sample, fact,
// or subscription refers to.
//
// A QName is always produced by Parse or Dup; the zero value is not a valid
// qname. A nil *QName represents the invalid qname sentinel (the Go analogue
// of the original C library's INVALID_QNAME) and is accepted by every method
// here as "not a qname" rather than panicking.
package qname

import "github.com/bizzaro-jhunt/tsdp-go/errors"

// MaxPairs is the maximum number of key/value pairs a qname may hold.
const MaxPairs = 64

// MaxInput is the maximum length, in octets, of a string accepted by Parse.
const MaxInput = 4095

// pair is one key/value (or key-only) slot within a QName's tag set.
type pair struct {
	key      string
	hasValue bool
	wildcard bool // value is the wildcard sentinel; value is unused when true
	value    string
}

// QName is a parsed, canonicalized qualified name.
//
// Go's strings are immutable and garbage-collected, which removes the
// aliasing hazard that motivates the original C library's distinction
// between a "contracted" qname (keys/values as offsets into one shared
// buffer) and an "expanded" one (keys/values individually owned): a Go
// substring slice already shares its backing array safely, with no pointer
// rebasing required on duplication, and mutation through Set/Unset/Merge
// never invalidates a string another QName holds. This type therefore keeps
// no separate contracted/expanded tag — Dup's only real obligation, honored
// below, is to copy the pairs slice header so that appending to or removing
// from one QName's tag set can never resize the other's backing array.
type QName struct {
	metric         string
	hasMetric      bool
	metricWildcard bool
	wild           bool
	pairs          []pair
}

// Value is the result of a Get lookup.
type Value struct {
	// HasValue is true if the key carries a value component at all (a
	// bare key, like "host" with no "=", has HasValue false).
	HasValue bool
	// Wildcard is true if the value is the wildcard sentinel rather than
	// a literal string.
	Wildcard bool
	// Literal is the value's text. Meaningless when !HasValue or Wildcard.
	Literal string
}

func newInvalidQnameError(operation, detail string) error {
	return errors.Newf(operation, errors.KindInvalidQname, "%s", detail)
}
