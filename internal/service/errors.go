package service

import (
	"errors"
	"fmt"
)

// --- Error Kinds ---
// Every failure a service returns on purpose wraps exactly one of these.
// The API layer switches on them with errors.Is; anything else is internal.
var (
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrInvalidReference     = errors.New("invalid reference")
	ErrInvalidFilter        = errors.New("invalid filter")
	ErrCapExceeded          = errors.New("calorie cap exceeded")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrMissingCredential    = errors.New("missing credential")
	ErrExpiredOrInvalid     = errors.New("expired or invalid credential")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
)

// Error carries a human readable message alongside its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind wrapped by err, or nil for unexpected errors.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrInvalidIdentifier, ErrNotFound, ErrConflict, ErrInvalidReference,
		ErrInvalidFilter, ErrCapExceeded, ErrInvalidArgument, ErrMissingCredential,
		ErrExpiredOrInvalid, ErrUnauthorized, ErrAuthenticationFailed,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
