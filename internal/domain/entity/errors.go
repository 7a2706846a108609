package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain errors. The set is closed; the HTTP layer maps
// each kind to exactly one status code.
type ErrorKind int

const (
	// KindUnknown is the zero value and is treated as an internal error.
	KindUnknown ErrorKind = iota
	KindNotFound
	KindConflict
	KindBadRequest
	KindUnprocessableEntity
	// KindForbidden is reserved; no business rule raises it today.
	KindForbidden
)

// String returns the kind name used in logs and metrics labels.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindBadRequest:
		return "BadRequest"
	case KindUnprocessableEntity:
		return "UnprocessableEntity"
	case KindForbidden:
		return "Forbidden"
	default:
		return "Unknown"
	}
}

// Error is a domain rule violation carrying its kind and a client-safe message.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error returns the client-facing message.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, &entity.Error{Kind: entity.KindNotFound}).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

// BadRequest builds a KindBadRequest error.
func BadRequest(format string, args ...any) *Error {
	return newError(KindBadRequest, format, args...)
}

// UnprocessableEntity builds a KindUnprocessableEntity error.
func UnprocessableEntity(format string, args ...any) *Error {
	return newError(KindUnprocessableEntity, format, args...)
}

// Forbidden builds a KindForbidden error.
func Forbidden(format string, args ...any) *Error {
	return newError(KindForbidden, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain,
// or KindUnknown when there is none.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
