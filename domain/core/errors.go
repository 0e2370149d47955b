package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound            = errors.New("resource not found")
	ErrUserNotFound        = fmt.Errorf("%w: user", ErrNotFound)
	ErrItemNotFound        = fmt.Errorf("%w: item", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)
	ErrResultNotFound      = fmt.Errorf("%w: mining result", ErrNotFound)

	// Parameter validation errors
	ErrInvalidParameters = errors.New("invalid mining parameters")
	ErrInvalidSupport    = fmt.Errorf("%w: min_support must be in (0,1]", ErrInvalidParameters)
	ErrInvalidConfidence = fmt.Errorf("%w: min_confidence must be in (0,1]", ErrInvalidParameters)
	ErrUnknownAlgorithm  = fmt.Errorf("%w: unknown algorithm", ErrInvalidParameters)

	// Input errors
	ErrEmptyTransaction = errors.New("transaction contains no items")
	ErrDuplicateItem    = errors.New("item already exists")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameters)
}
