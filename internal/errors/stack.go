package errors

import (
	"errors"
	"fmt"
	"strings"
)

type stackTracer interface {
	ErrorStack() string
}

// ErrorStack returns the stack traces found anywhere in the error tree, one after the other.
func ErrorStack(err error) string {
	var stacks []string

	walk(err, func(err error) bool {
		if tracer, ok := err.(stackTracer); ok {
			stacks = append(stacks, tracer.ErrorStack())
		}

		return true
	})

	return strings.Join(stacks, "\n")
}

// Recover turns a panic into an error and hands it to onPanic. Call it from a defer statement.
func Recover(onPanic func(cause error)) {
	rec := recover()
	if rec == nil {
		return
	}

	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", rec) //nolint:err113
	}

	onPanic(New(err))
}

func containsStackTrace(err error) bool {
	found := false

	walk(err, func(err error) bool {
		_, found = err.(stackTracer)

		return !found
	})

	return found
}

// walk visits err and everything it wraps, depth first, until visit returns false.
func walk(err error, visit func(error) bool) bool {
	for err != nil {
		if !visit(err) {
			return false
		}

		if multi, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range multi.Unwrap() {
				if !walk(inner, visit) {
					return false
				}
			}

			return true
		}

		err = errors.Unwrap(err)
	}

	return true
}
