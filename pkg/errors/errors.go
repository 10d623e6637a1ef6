// Package errors defines the error kinds shared across the toolkit and
// helpers for wrapping them with context. Callers classify failures with
// errors.Is against the exported sentinels.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks failures caused by bad caller input: empty
	// strings or lists, unknown field names, negative counts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO marks failures reading a source file or fetching a URL.
	ErrIO = errors.New("io error")

	// ErrNotFound marks lookups that matched nothing.
	ErrNotFound = errors.New("not found")
)

// AppError pairs a sentinel kind with a human-readable message.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, message string) *AppError {
	return &AppError{
		Err:     sentinel,
		Message: message,
	}
}

func Newf(sentinel error, format string, args ...any) *AppError {
	return &AppError{
		Err:     sentinel,
		Message: fmt.Sprintf(format, args...),
	}
}
