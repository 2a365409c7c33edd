package command

import (
	"fmt"
	"strings"
)

// Output is what a finished process left behind.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the process exited with code 0.
func (out *Output) Success() bool {
	return out.ExitCode == 0
}

// DecodedStdout returns stdout as trimmed text.
func (out *Output) DecodedStdout() string {
	return strings.TrimSpace(string(out.Stdout))
}

// DecodedStderr returns stderr as trimmed text.
func (out *Output) DecodedStderr() string {
	return strings.TrimSpace(string(out.Stderr))
}

// Error is returned when a command fails and failing on error is enabled.
type Error struct {
	Output *Output
	Name   string
	Dir    string
	Args   []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("command failed with code %d: %s %s", err.Output.ExitCode, err.Name, strings.Join(err.Args, " "))
}

// ExitStatus returns the exit code of the failed process.
func (err *Error) ExitStatus() (int, error) {
	return err.Output.ExitCode, nil
}
