// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors. Deletes and updates against a missing id are
// plain no-ops, so there is no not-found error to return.
var (
	// ErrValidation marks bad or missing user input; the operation performed
	// no mutation and the message is safe to show to the user.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence marks a store read or write failure; the previously
	// persisted document is intact and the operation failed as a whole.
	ErrPersistence = errors.New("persistence failed")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsValidation reports whether err is a user-input validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsPersistence reports whether err came from the storage layer.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}
