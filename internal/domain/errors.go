package domain

import (
	"errors"
	"fmt"
)

// Kinds of record failures. A RecordError always wraps exactly one of these.
var (
	ErrMalformedRow        = errors.New("malformed row")
	ErrInvalidAirportCode  = errors.New("invalid airport code")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrInvalidNumericField = errors.New("invalid numeric field")
	ErrMissingColumns      = errors.New("missing columns")
)

// ErrInvalidQuery is returned by Query.Validate.
var ErrInvalidQuery = errors.New("invalid query")

// Failure to turn one input row into a Flight.
// Line is the 1-based position of the row in its source (0 when unknown).
type RecordError struct {
	Kind   error
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RecordError) Error() string {
	msg := e.Kind.Error()
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Column != "" {
		msg = fmt.Sprintf("%s: column %q value %q", msg, e.Column, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RecordError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
