// Package apperr defines the domain failure taxonomy shared by all modules.
//
// Every failure unwraps to exactly one of the sentinel kinds so callers can
// classify with errors.Is without knowing the concrete message.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrAuthorization   = errors.New("not authorized")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Error is a classified domain failure with a user-facing message.
type Error struct {
	kind    error
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.kind
}

// With attaches a detail field that is echoed in the HTTP error body.
func (e *Error) With(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return newError(ErrNotFound, format, args...)
}

func Validation(format string, args ...any) *Error {
	return newError(ErrValidation, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(ErrConflict, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newError(ErrAuthorization, format, args...)
}

func Unauthenticated(format string, args ...any) *Error {
	return newError(ErrUnauthenticated, format, args...)
}

// Kind returns the sentinel err is classified as, or nil for unclassified
// (infrastructure) errors.
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrValidation, ErrConflict, ErrAuthorization, ErrUnauthenticated} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// IsDomain reports whether err is one of the classified failures.
func IsDomain(err error) bool {
	return Kind(err) != nil
}
