// Package apperr carries the domain error taxonomy across service
// boundaries so controllers can translate kinds to HTTP statuses in one
// place.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindTableUnavailable
	KindItemUnavailable
	KindInvalidState
	KindAuthorization
	KindUnauthenticated
	KindPersistence
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func TableUnavailable(format string, args ...any) *Error {
	return &Error{Kind: KindTableUnavailable, Message: fmt.Sprintf(format, args...)}
}

func ItemUnavailable(format string, args ...any) *Error {
	return &Error{Kind: KindItemUnavailable, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthenticated, Message: fmt.Sprintf(format, args...)}
}

// Persistence wraps a store failure; the original error is kept for logs but
// never leaks into the response body.
func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: "internal storage error", Err: err}
}

// KindOf extracts the kind of err, defaulting to KindPersistence for
// anything the services did not classify.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
