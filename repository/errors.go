package repository

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can translate it mechanically
type Kind string

const (
	KindValidation     Kind = "validation"
	KindInvalidPayload Kind = "invalid_payload"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindStorageWrite   Kind = "storage_write"
)

// Error is a classified failure with a human-readable message
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a classified error
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the classification of err, or "" for unclassified errors
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err is a not-found failure
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
