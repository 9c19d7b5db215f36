package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingReference indicates a record points at a user that does not exist
	ErrMissingReference = errors.New("missing reference")
)

// NotFoundError creates a not found error with context
func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// MissingReferenceError reports a dangling reference to a user of the given kind
func MissingReferenceError(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrMissingReference)
}
