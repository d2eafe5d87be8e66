package service

import (
	"errors"
	"fmt"
)

// Outcome classes the HTTP boundary maps to status codes. Services return
// these (possibly wrapped); anything else is an internal failure.
var (
	// ErrNotFound: the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: the caller is authenticated but not the owner.
	ErrForbidden = errors.New("forbidden")
	// ErrUsernameTaken: duplicate username on registration.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials: unknown username or wrong password. The two are
	// deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidSession: missing, unknown or expired session token.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// ValidationError carries a user-facing message about bad input. It is
// recovered locally at the boundary, never fatal.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
