// Package errors defines the TSDP diagnostic error taxonomy shared by the
// qname and message packages.
//
// Every public failure in this module is reported through a single typed
// *Error rather than a bare string or sentinel value, in the spirit of the
// original C library's errno/tsdp_strerror scheme (src/errors.c): callers
// can switch on Kind for programmatic handling, or call Error() (or
// Kind.String) for a human-readable rendering.
package errors

import "fmt"

// Kind enumerates the diagnostic categories a TSDP operation can fail with.
//
// These mirror the enumerated error kinds of the TSDP wire format and
// qname grammar: construction and validation never partially complete,
// they either succeed or report exactly one Kind.
type Kind int

const (
	// KindNone is the zero value; never set on a returned error.
	KindNone Kind = iota

	// KindInvalidVersion: a message's version field was not 1.
	KindInvalidVersion

	// KindInvalidOpcode: a message's opcode field was outside {0..5}.
	KindInvalidOpcode

	// KindInvalidFlag: flags were out of range (>= 256 or < 0) at construction.
	KindInvalidFlag

	// KindInvalidPayload: reserved payload bits were set, the payload
	// popcount didn't match what the opcode/payload combination requires,
	// or a required non-empty payload was empty.
	KindInvalidPayload

	// KindInvalidArity: a message had the wrong frame count for its
	// opcode/payload combination.
	KindInvalidArity

	// KindInvalidFrame: a frame at a given position had the wrong type or
	// length for its opcode/payload/position.
	KindInvalidFrame

	// KindInvalidQname: a qname string could not be parsed.
	KindInvalidQname

	// KindCapacity: a qname operation exceeded a fixed bound (MaxPairs
	// key/value pairs, MaxInput input octets).
	KindCapacity

	// KindInvalidArgument: a caller supplied a nil or otherwise unusable
	// argument (e.g. a nil qname to Set/SetKeyOnly/Merge).
	KindInvalidArgument
)

// String renders the Kind's stable textual name, analogous to
// src/errors.c's ERRORS[] table indexed from ERROR_BASE.
func (k Kind) String() string {
	switch k {
	case KindInvalidVersion:
		return "invalid TSDP version"
	case KindInvalidOpcode:
		return "invalid TSDP opcode"
	case KindInvalidFlag:
		return "invalid TSDP flag"
	case KindInvalidPayload:
		return "invalid TSDP payload"
	case KindInvalidArity:
		return "invalid frame count for TSDP message"
	case KindInvalidFrame:
		return "invalid frame type in TSDP message"
	case KindInvalidQname:
		return "invalid qualified name"
	case KindCapacity:
		return "capacity exceeded"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return "unrecognized failure"
	}
}

// Error is the single error type returned by every public TSDP operation.
//
// Operation names the call that failed (e.g. "qname.Parse", "message.Valid"),
// and Detail carries operation-specific context (the offending frame index,
// the qname string that failed to parse, and so on). Err optionally chains
// to an underlying cause for errors.Is/errors.As inspection.
type Error struct {
	Kind      Kind
	Operation string
	Detail    string
	Err       error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Operation, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Kind)
}

// Unwrap returns the chained cause, if any, enabling errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an *Error for the given operation/kind with no further detail.
func New(operation string, kind Kind) *Error {
	return &Error{Operation: operation, Kind: kind}
}

// Newf constructs an *Error with a formatted Detail string.
func Newf(operation string, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Operation: operation, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// NewCapacity constructs a KindCapacity *Error, the Go analogue of the
// original C library's ENOBUFS return when a fixed-size qname bound
// (MaxPairs, MaxInput) is exceeded.
func NewCapacity(operation, detail string) *Error {
	return &Error{Operation: operation, Kind: KindCapacity, Detail: detail}
}

// KindOf extracts the Kind from err if it (or something in its chain) is a
// *Error, or KindNone if not.
func KindOf(err error) Kind {
	var e *Error
	if as(err, &e) {
		return e.Kind
	}
	return KindNone
}

// as is a tiny local shim around errors.As to avoid importing the standard
// library "errors" package under the same name as this package.
func as(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
