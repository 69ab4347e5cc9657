// Package apperr classifies failures so callers can decide between
// user-facing messages, retries, and operator diagnostics.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: bad input, recoverable by the caller.
	KindValidation
	// KindConfiguration: missing secrets/environment; the affected flow fails closed.
	KindConfiguration
	// KindConflict: duplicate identity, illegal state transition.
	KindConflict
	// KindTransient: network/timeout against an external service; retryable.
	KindTransient
	// KindSecurity: signature verification failure; always rejected, never processed.
	KindSecurity
	// KindNotFound: record absent where the caller expected one.
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

func Configuration(format string, args ...any) *Error {
	return New(KindConfiguration, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, format, args...)
}

func Transient(err error, format string, args ...any) *Error {
	return Wrap(KindTransient, err, format, args...)
}

func Security(format string, args ...any) *Error {
	return New(KindSecurity, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// KindOf walks the error chain and returns the first classified kind.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }
