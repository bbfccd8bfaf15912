package linkhdr

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal means the parser itself misbehaved. It is never caused by input.
	ErrInternal         = errors.New("internal parser error")
	ErrInvalidReference = errors.New("invalid reference")
	ErrMalformedParam   = errors.New("malformed parameter")
	ErrMalformedQuery   = errors.New("malformed query")
	// ErrMissingRel is only returned by ParseWithRel.
	ErrMissingRel = errors.New("missing rel parameter")
)

// ParseError is returned for every failed parse.
// Use errors.Is with one of the Err* variables to check the kind.
type ParseError struct {
	// One of the Err* variables.
	Kind error
	// The entry, field or reference that failed.
	Text string
	// Optional underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", e.Kind, e.Text, e.Err)
	}
	return fmt.Sprintf("%v %q", e.Kind, e.Text)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}
