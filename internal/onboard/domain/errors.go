package domain

import (
	"errors"
	"fmt"
)

// Kind is the stable, machine-readable classification of an error. Transports
// map kinds to their own status codes.
type Kind string

const (
	KindUnknown             Kind = "server_error"
	KindNotFound            Kind = "not_found"
	KindForbidden           Kind = "forbidden"
	KindConflict            Kind = "conflict"
	KindDuplicateAssignment Kind = "duplicate_assignment"
	KindInvalidTransition   Kind = "invalid_transition"
	KindExpired             Kind = "expired"
	KindAlreadyUsed         Kind = "already_used"
	KindValidation          Kind = "validation_error"
)

// Error is the domain error type. Message is safe to show to callers, Cause is
// kept for logs only.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches on kind so callers can write errors.Is(err, domain.ErrNotFound).
// DuplicateAssignment is a specialisation of Conflict and matches both.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind == t.Kind {
		return true
	}
	return e.Kind == KindDuplicateAssignment && t.Kind == KindConflict
}

// Sentinels for errors.Is comparisons. Never return these directly, use the
// constructors below so the message says what went wrong.
var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrForbidden           = &Error{Kind: KindForbidden}
	ErrConflict            = &Error{Kind: KindConflict}
	ErrDuplicateAssignment = &Error{Kind: KindDuplicateAssignment}
	ErrInvalidTransition   = &Error{Kind: KindInvalidTransition}
	ErrExpired             = &Error{Kind: KindExpired}
	ErrAlreadyUsed         = &Error{Kind: KindAlreadyUsed}
	ErrValidation          = &Error{Kind: KindValidation}
)

func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func WrapError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func NotFound(format string, args ...any) *Error {
	return NewError(KindNotFound, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return NewError(KindForbidden, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return NewError(KindConflict, format, args...)
}

func InvalidTransition(format string, args ...any) *Error {
	return NewError(KindInvalidTransition, format, args...)
}

func Validation(format string, args ...any) *Error {
	return NewError(KindValidation, format, args...)
}

// KindOf returns the kind of the first domain error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
