package command

import (
	"fmt"

	"github.com/gruntwork-io/go-utils/internal/errors"
)

var (
	ErrCommandSpawn = errors.New("failed to spawn command")
	ErrNotFound     = errors.New("command not found")
	ErrNoName       = errors.New("command name not set")
)

// WrappedError provides additional context for errors
type WrappedError struct {
	Err     error
	Op      string
	Context string
}

func (e *WrappedError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Context, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WrappedError) Unwrap() error {
	return e.Err
}
