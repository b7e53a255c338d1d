// Package apperr defines the errors the catalog core reports to its callers.
package apperr

import (
	"errors"
	"fmt"
)

// ErrValidation matches any *ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a draft that cannot be added to the catalog.
// The catalog is left unchanged when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidation or another validation error.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	_, ok := target.(*ValidationError)
	return ok
}

// Required creates the error for a missing required field.
func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

// Invalid creates the error for a field holding an unsupported value.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err carries a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
