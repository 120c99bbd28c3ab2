package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the machine-readable error code carried in error bodies.
type Code string

const (
	CodeBadRequest Code = "BAD_REQUEST"
	CodeNotFound   Code = "NOT_FOUND"
	CodeInternal   Code = "INTERNAL_SERVER_ERROR"
)

// Error is an HTTP-mappable application error.
type Error struct {
	Status  int
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// BadRequest builds a 400 error with a formatted message.
func BadRequest(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a 404 error with a formatted message.
func NotFound(format string, args ...any) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal builds a 500 error wrapping the underlying cause. The cause
// is logged server-side, never surfaced to clients.
func Internal(cause error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "An unexpected error occurred.",
		cause:   cause,
	}
}

// From maps any error onto the taxonomy, defaulting unknown errors to Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
