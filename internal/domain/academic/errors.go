package academic

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every rejected store or planning input
var ErrValidation = errors.New("validation failed")

// ValidationError describes which input was rejected and why
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
