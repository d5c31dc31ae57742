package apperror

import "fmt"

// AppError is the error type services return to handlers. Code maps to
// the machine-readable taxonomy in codes.go, Message is safe to show to
// the client, HTTPStatus is the status ToHTTP writes.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // underlying cause, nil for sentinels
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is and errors.As see through it.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a sentinel AppError with no underlying cause.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches a code, message and status to an existing error.
// Returns nil when err is nil so call sites can pass results through.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
