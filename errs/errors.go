// Package errs defines the errors reported by the record codec.
//
// Callers compare against the sentinel values with errors.Is. Failures tied
// to a specific field or byte range are reported as *FieldError or *RangeError,
// which carry the offending key, offsets and value and unwrap to a sentinel.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNotFound is returned when no named field matches the key.
	ErrFieldNotFound = errors.New("no such field")
	// ErrEmptyKey is returned when a field key is the empty string.
	ErrEmptyKey = errors.New("empty field key")
	// ErrUnknownLayoutNoFieldOps is returned for field-name operations on an unrecognized layout.
	ErrUnknownLayoutNoFieldOps = errors.New("unknown layout: field operations are not available")
	// ErrOffsetOutOfBounds is returned when a byte range falls outside the record.
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")
	// ErrValueOutOfRange is returned when a byte value is outside 0-255.
	ErrValueOutOfRange = errors.New("byte value out of range")
	// ErrSyntax is the root of every kind-specific encode failure.
	ErrSyntax = errors.New("syntax error")
	// ErrSchemaMismatch is returned when a buffer cannot hold the requested layout.
	ErrSchemaMismatch = errors.New("buffer does not fit layout")
	// ErrInvalidLayoutVersion is returned for an unknown layout version.
	ErrInvalidLayoutVersion = errors.New("invalid layout version")
	// ErrNoChanges is returned when a batch contains no entries.
	ErrNoChanges = errors.New("no changes requested")
	// ErrMalformedChange is returned when a textual change cannot be parsed.
	ErrMalformedChange = errors.New("malformed change")
	// ErrNotUpdatable is returned when encoding into a reserved or raw field.
	ErrNotUpdatable = errors.New("field is not updatable")
)

// SyntaxError reports a value that does not follow the syntax of a field kind.
type SyntaxError struct {
	Kind   string
	Field  string
	Value  string
	Reason string
}

func (e *SyntaxError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s value %q: %s", e.Kind, e.Value, e.Reason)
	}

	return fmt.Sprintf("invalid value %q for field %q: %s", e.Value, e.Field, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// FieldError reports a failed operation on a field addressed by name.
type FieldError struct {
	Op  string
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// RangeError reports a failed operation on an inclusive byte range.
// Value is -1 for operations that carry no value, such as clears.
type RangeError struct {
	Op    string
	Start int
	End   int
	Value int
	Err   error
}

func (e *RangeError) Error() string {
	if e.Value < 0 {
		return fmt.Sprintf("%s [%d-%d]: %v", e.Op, e.Start, e.End, e.Err)
	}

	return fmt.Sprintf("%s [%d-%d]=%d: %v", e.Op, e.Start, e.End, e.Value, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
