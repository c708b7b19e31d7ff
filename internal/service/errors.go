package service

import (
	"errors"
	"fmt"
)

var (
	// ErrFetch marks failures of the external trivia provider.
	ErrFetch = errors.New("fetch failed")

	// ErrValidation marks rejected user input.
	ErrValidation = errors.New("validation failed")

	// ErrSessionClosed is returned when a session was torn down before an operation could apply.
	ErrSessionClosed = errors.New("session closed")
)

// FetchError reports a network failure or a non-success response of the provider.
type FetchError struct {
	Op  string // operation that issued the request
	Err error  // underlying cause
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrFetch, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrFetch, e.Err}
}

// ValidationError reports an input value the session refused to accept.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
