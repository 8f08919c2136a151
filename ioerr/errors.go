// Package ioerr provides the error type for the buffer core. It
// classifies every failure (EOF, bad argument, bad state, numeric
// overflow, protocol violation, I/O failure, interruption) so callers
// can branch on Type instead of parsing strings. Category is derived
// from Type: the two together answer "what went wrong" and "whose
// fault was it" without any call site having to pick both.
package ioerr

import (
	"errors"
	"fmt"

	stderrors "github.com/pkg/errors"
)

//go:generate stringer -type=Type -linecomment

// Type classifies an Error the way callers are expected to switch on.
type Type uint8

const (
	// TypeUnknown should never be returned; its presence indicates a bug.
	TypeUnknown Type = iota // Unknown
	// TypeEOF means a read required more bytes than were available.
	TypeEOF // EOF
	// TypeArgument means an invalid parameter was supplied.
	TypeArgument // IllegalArgument
	// TypeState means the operation was attempted on a closed or unattached resource.
	TypeState // IllegalState
	// TypeOverflow means a decimal/hex parse produced a value outside the 64-bit range.
	TypeOverflow // NumericOverflow
	// TypeProtocol means a compressor/decompressor reported invalid data.
	TypeProtocol // Protocol
	// TypeIO means the underlying raw source/sink reported a failure.
	TypeIO // IO
	// TypeInterrupted means a timeout watcher cancelled a blocked operation.
	TypeInterrupted // Interrupted
)

//go:generate stringer -type=Category -linecomment

// Category groups a Type by who is responsible for the failure: the
// caller (bad arguments, reads past EOF, operating on a closed
// resource, a blown deadline) or the library and its collaborators
// (protocol violations from a compressor, underlying I/O failures).
type Category uint8

const (
	// CategoryUnknown should never be returned; its presence indicates a bug.
	CategoryUnknown Category = iota // Unknown
	// CategoryUser means the caller's input or usage caused the error.
	CategoryUser // User
	// CategoryInternal means the library or an underlying collaborator caused the error.
	CategoryInternal // Internal
)

// category classifies t the way the package's own constructors do; it
// is not configurable per call because every site that constructs an
// Error already picks a Type, and Type alone determines fault.
func (t Type) category() Category {
	switch t {
	case TypeArgument, TypeState, TypeOverflow, TypeEOF, TypeInterrupted:
		return CategoryUser
	case TypeProtocol, TypeIO:
		return CategoryInternal
	default:
		return CategoryUnknown
	}
}

// Error is the error type used throughout this module. It wraps an
// underlying cause (which may be nil) with a Type for programmatic
// dispatch and preserves the cause chain via Unwrap.
type Error struct {
	Type     Type
	Category Category
	msg      string
	cause    error
}

// E creates a new *Error of the given Type with msg as its message.
func E(t Type, msg string) *Error {
	return &Error{Type: t, Category: t.category(), msg: msg}
}

// Ef is like E but formats msg with fmt.Sprintf.
func Ef(t Type, format string, args ...any) *Error {
	return &Error{Type: t, Category: t.category(), msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a Type to an existing error, preserving it as the cause.
// If err is nil, Wrap returns nil.
func Wrap(t Type, err error, msg string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Type: t, Category: t.category(), msg: msg, cause: stderrors.Wrap(err, msg)}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap allows errors.Is/errors.As to see through to the cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same Type, so callers
// can do errors.Is(err, ioerr.E(ioerr.TypeEOF, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// EOF is the canonical "not enough bytes" error.
var EOF = E(TypeEOF, "EOF")

// IsEOF reports whether err is (or wraps) the EOF condition.
func IsEOF(err error) bool {
	return errors.Is(err, EOF)
}

// Closed is the canonical "already closed" error used by BufferedSource/Sink.
var Closed = E(TypeState, "closed")
