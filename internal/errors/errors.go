// Package errors joins stdlib error inspection with pkg/errors stack annotation, and turns
// recovered panics into ordinary errors.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error with text as its message.
func New(text string) error {
	return stderrors.New(text)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is errors.As from the standard library.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with the caller's stack. A nil err stays nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Recovered turns a recovered panic value into an error with a stack.
// Error values keep their identity for Is and As.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return pkgerrors.WithStack(err)
	}

	return pkgerrors.WithStack(&PanicError{Value: v})
}
