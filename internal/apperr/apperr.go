package apperr

// Package apperr defines the application-wide error taxonomy. Every failure that
// crosses a repository or handler boundary is one of these kinds, so transport
// code can map errors to HTTP statuses without inspecting driver internals.

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound maps to 404.
	KindNotFound
	// KindValidation maps to 400 (malformed input, unknown enum tokens).
	KindValidation
	// KindStorage maps to 500; the underlying cause is logged server-side only.
	KindStorage
	// KindInternal maps to 500.
	KindInternal
	// KindNotImplemented maps to 500 for deliberately stubbed operations.
	KindNotImplemented
)

// Error carries a kind, a client-safe message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports an absent resource.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Validation reports malformed or rejected input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Storage reports a failed or unreachable storage backend. The cause is kept
// for server-side logging; clients only ever see the message.
func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

// Internal reports an unexpected failure.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// NotImplemented reports a deliberately stubbed operation.
func NotImplemented(op string) *Error {
	return &Error{Kind: KindNotImplemented, Message: fmt.Sprintf("%s is not implemented", op)}
}

// KindOf extracts the kind from an error chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode maps an error to the HTTP status its kind implies.
// Unknown errors are treated as internal.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to expose to clients. Storage and
// internal failures collapse to a generic message so driver errors and SQL
// text never leak into response bodies.
func ClientMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "internal server error"
	}
	switch e.Kind {
	case KindNotFound, KindValidation:
		return e.Message
	case KindStorage:
		return "storage unavailable"
	default:
		return "internal server error"
	}
}
