package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a contract violation by the caller or an upstream
// data source: a malformed month selector, a non-positive rounding limit, or
// a transaction record with an unparsable date or missing amount.
// It is always surfaced immediately and never silently recovered.
type ValidationError struct {
	Msg string
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
