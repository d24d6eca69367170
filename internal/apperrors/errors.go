package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindConflict         Kind = "CONFLICT"
	KindNotFound         Kind = "NOT_FOUND"
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindThrottled        Kind = "THROTTLED"
	KindInvalidOperation Kind = "INVALID_OPERATION"
	KindMismatch         Kind = "MISMATCH"
	KindInternal         Kind = "INTERNAL"
)

// Error carries a machine-readable kind next to the message shown to clients.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches on kind and message so sentinel errors work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func Validation(msg string) error       { return New(KindValidation, msg) }
func Conflict(msg string) error         { return New(KindConflict, msg) }
func NotFound(msg string) error         { return New(KindNotFound, msg) }
func Unauthorized(msg string) error     { return New(KindUnauthorized, msg) }
func Throttled(msg string) error        { return New(KindThrottled, msg) }
func InvalidOperation(msg string) error { return New(KindInvalidOperation, msg) }
func Mismatch(msg string) error         { return New(KindMismatch, msg) }

func Internal(msg string, cause error) error {
	return Wrap(KindInternal, msg, cause)
}

// KindOf reports the kind of err, KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
