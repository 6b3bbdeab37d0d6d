package models

import "errors"

// ErrorKind is the machine-readable class of a domain failure.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindCapacityExceeded ErrorKind = "capacity_exceeded"
	KindInvalidInput     ErrorKind = "invalid_input"
	KindInternal         ErrorKind = "internal"
)

// Error is a typed domain failure carrying a kind and a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// ErrMemberNotFound is returned when a member id does not resolve.
	ErrMemberNotFound = &Error{Kind: KindNotFound, Message: "member not found"}
	// ErrSessionNotFound is returned when a session id does not resolve.
	ErrSessionNotFound = &Error{Kind: KindNotFound, Message: "session not found"}
	// ErrSessionFull is returned when a session is at max participants.
	ErrSessionFull = &Error{Kind: KindCapacityExceeded, Message: "session is full"}
	// ErrInvalidInput signals failed input validation.
	ErrInvalidInput = &Error{Kind: KindInvalidInput, Message: "invalid input"}
	// ErrInvalidTransition signals a backward or unknown status change.
	ErrInvalidTransition = &Error{Kind: KindInvalidInput, Message: "invalid status transition"}
)

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
