package integer

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

var (
	// ErrInvalidFormat is the cause of every failed Parse.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrRange is returned when a value cannot be represented by the
	// requested form (e.g. a negative value for an unsigned schema).
	ErrRange = errors.New("out of range")
)

// ParseError records text that is not a decimal integer.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidFormat, e.Reason)
}

// Unwrap returns ErrInvalidFormat.
func (e *ParseError) Unwrap() error {
	return ErrInvalidFormat
}
