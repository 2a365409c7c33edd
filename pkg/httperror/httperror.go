// Package httperror maps HTTP status codes to error values.
package httperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultName = "HttpError"

// Error is an error that carries an HTTP status code and optional data.
type Error struct {
	Data       any
	Message    string
	StatusCode int
}

// Option configures an Error on creation.
type Option func(*Error)

// WithData attaches arbitrary data to the error.
func WithData(data any) Option {
	return func(err *Error) {
		err.Data = data
	}
}

// New returns an error for the given status code.
func New(statusCode int, message string, opts ...Option) *Error {
	err := &Error{
		StatusCode: statusCode,
		Message:    message,
	}

	for _, opt := range opts {
		opt(err)
	}

	return err
}

// Errorf returns an error for the given status code with a formatted message.
func Errorf(statusCode int, format string, args ...any) *Error {
	return New(statusCode, fmt.Sprintf(format, args...))
}

// Error implements the error interface.
func (err *Error) Error() string {
	if err.Message == "" {
		return err.Name()
	}

	return err.Name() + ": " + err.Message
}

// Name returns the status text without spaces, e.g. `NotFound` for 404, or `HttpError` for unknown codes.
func (err *Error) Name() string {
	return StatusName(err.StatusCode)
}

// StatusName returns the name of the status code, e.g. `InternalServerError` for 500.
func StatusName(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		return defaultName
	}

	// Casers keep state, so each call gets its own.
	caser := cases.Title(language.English, cases.NoLower)

	return strings.ReplaceAll(caser.String(text), " ", "")
}

// Is reports whether the error, or any error it wraps, is an HTTP error.
func Is(err error) bool {
	var httpErr *Error
	return errors.As(err, &httpErr)
}

// StatusCode returns the status code of the HTTP error found in the error chain,
// or 500 if there is none.
func StatusCode(err error) int {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	return http.StatusInternalServerError
}
