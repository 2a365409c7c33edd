// Package errors attaches stack traces to errors and collects several errors into one.
//
// Every error leaving a package boundary should go through New or Errorf so that the
// CLI can print where it came from at the trace log level.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New returns val as an error carrying a stack trace. Errors that already carry one are
// returned unchanged, nil stays nil, and any other value becomes the error message.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && containsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf formats an error like fmt.Errorf, %w included, and attaches a stack trace.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
