package coerce

import (
	"errors"
	"fmt"
)

// InvalidTypeError reports an input whose runtime kind does not satisfy
// an operation's contract. It carries both the kind the operation
// requires and the kind it received, plus a rendering of the offending
// value for debugging.
type InvalidTypeError struct {
	// Expected is the kind the operation requires (e.g. "*big.Int").
	Expected string

	// Actual is the dynamic kind of the value received.
	Actual string

	// Value is a textual rendering of the offending value.
	Value string
}

// Error implements the error interface.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type: expected %s, got %s (%s)", e.Expected, e.Actual, e.Value)
}

// NewInvalidTypeError builds an InvalidTypeError for a value that failed
// the runtime kind check for expected.
func NewInvalidTypeError(expected string, v any) *InvalidTypeError {
	if v == nil {
		return &InvalidTypeError{Expected: expected, Actual: "<nil>", Value: "<nil>"}
	}
	return &InvalidTypeError{
		Expected: expected,
		Actual:   fmt.Sprintf("%T", v),
		Value:    fmt.Sprintf("%v", v),
	}
}

// IsInvalidType reports whether err is an InvalidTypeError.
// Uses errors.As to handle wrapped errors.
func IsInvalidType(err error) bool {
	var te *InvalidTypeError
	return errors.As(err, &te)
}
