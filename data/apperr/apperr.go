package apperr

import "errors"

// Kind classifies an operation failure so the transport layer can pick a
// status code without inspecting message strings.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindValidation       Kind = "validation"
	KindConflict         Kind = "conflict"
	KindCapacityExceeded Kind = "capacity_exceeded"
	KindInvalidState     Kind = "invalid_state"
	KindAuthFailure      Kind = "auth_failure"
	KindWrongRole        Kind = "wrong_role"
)

// Error carries a kind and a message safe for direct display to the caller.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func CapacityExceeded(msg string) error {
	return &Error{Kind: KindCapacityExceeded, Message: msg}
}

func InvalidState(msg string) error {
	return &Error{Kind: KindInvalidState, Message: msg}
}

func AuthFailure(msg string) error {
	return &Error{Kind: KindAuthFailure, Message: msg}
}

func WrongRole(msg string) error {
	return &Error{Kind: KindWrongRole, Message: msg}
}

// KindOf extracts the kind from err. Errors that did not originate from this
// package report an empty kind, which the transport treats as a server error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
