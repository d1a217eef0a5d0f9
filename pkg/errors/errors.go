// ================== pkg/errors/errors.go =================
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can pick a status code.
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindAuthentication Kind = "AUTHENTICATION_ERROR"
	KindAuthorization  Kind = "AUTHORIZATION_ERROR"
	KindNotFound       Kind = "NOT_FOUND"
	KindConflict       Kind = "CONFLICT"
	KindIntegrity      Kind = "INTEGRITY_FAULT"
	KindInternal       Kind = "INTERNAL_ERROR"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal server error")
	ErrDuplicate    = errors.New("resource already exists")
	ErrValidation   = errors.New("validation failed")
)

// Error is the error type returned by services. Message is safe to show to clients;
// Err carries the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: ErrValidation}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message, Err: ErrUnauthorized}
}

func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: ErrNotFound}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: ErrDuplicate}
}

// Integrity reports stored data that contradicts an invariant, e.g. an account whose
// role field disagrees with the collection it was read from.
func Integrity(message string) *Error {
	return &Error{Kind: KindIntegrity, Message: message}
}

// Internal wraps an unexpected failure (usually persistence).
func Internal(message string, err error) *Error {
	if err == nil {
		err = ErrInternal
	}
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
