// Package apperror carries the HTTP status an error should surface with.
// Handlers attach these to the gin context and the terminal error handler
// renders them.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Error is an error with a client-facing message and status. The cause is
// kept for logging only.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil && e.cause.Error() != e.Message {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Stack renders the captured stack trace of the error.
func (e *Error) Stack() string {
	if e.cause == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.cause)
}

func newError(status int, message string, cause error) *Error {
	if cause == nil {
		cause = pkgerrors.New(message)
	} else {
		cause = pkgerrors.WithStack(cause)
	}
	return &Error{Status: status, Message: message, cause: cause}
}

// New builds an error with an arbitrary status.
func New(status int, message string, cause error) *Error {
	return newError(status, message, cause)
}

// Validation reports failing fields, e.g. "title is required".
func Validation(fields []string) *Error {
	msg := "Validation failed"
	if len(fields) > 0 {
		msg += ": " + strings.Join(fields, "; ")
	}
	return newError(http.StatusBadRequest, msg, nil)
}

func BadRequest(message string, cause error) *Error {
	return newError(http.StatusBadRequest, message, cause)
}

func NotFound(message string) *Error {
	return newError(http.StatusNotFound, message, nil)
}

func Unauthorized() *Error {
	return newError(http.StatusUnauthorized, "Unauthorized", nil)
}

func Forbidden() *Error {
	return newError(http.StatusForbidden, "Forbidden", nil)
}

// Internal hides cause from the client behind message.
func Internal(message string, cause error) *Error {
	return newError(http.StatusInternalServerError, message, cause)
}

// From converts any error into an *Error, defaulting to a 500.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Status == 0 {
			appErr.Status = http.StatusInternalServerError
		}
		return appErr
	}
	return Internal("Internal Server Error", err)
}
