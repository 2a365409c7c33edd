// Package command runs external binaries and captures their output.
package command

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/log"
)

// Command describes a binary and the defaults applied to each of its executions.
type Command struct {
	Logger      log.Logger
	Env         map[string]string
	Name        string
	Dir         string
	FailOnError bool
}

// New returns a command for the named binary with the given defaults.
func New(name string, opts ...Option) *Command {
	cmd := &Command{Name: name}

	cfg := cmd.config(opts)
	cmd.Name = cfg.name
	cmd.Dir = cfg.dir
	cmd.Env = cfg.env
	cmd.FailOnError = cfg.failOnError
	cmd.Logger = cfg.logger

	return cmd
}

// Execute runs the command with args. A non-zero exit is reported through the
// returned output; it only becomes an error when failing on error is enabled.
func (cmd *Command) Execute(ctx context.Context, args []string, opts ...Option) (*Output, error) {
	cfg := cmd.config(opts)

	if cfg.name == "" {
		return nil, errors.New(ErrNoName)
	}

	var stdout, stderr bytes.Buffer

	proc := exec.CommandContext(ctx, cfg.name, args...)
	proc.Dir = cfg.dir
	proc.Env = environ(cfg.env)
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	cfg.logger.WithField("dir", cfg.dir).Debugf("Running command: %s %s", cfg.name, strings.Join(args, " "))

	err := proc.Run()

	output := &Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.New(&WrappedError{
				Op:  cfg.name,
				Err: errors.Errorf("%w: %w", ErrCommandSpawn, err),
			})
		}

		output.ExitCode = exitErr.ExitCode()
	}

	cfg.logger.Debugf("Command %s exited with code %d", cfg.name, output.ExitCode)

	if cfg.failOnError && !output.Success() {
		return output, errors.New(&Error{
			Output: output,
			Name:   cfg.name,
			Args:   args,
			Dir:    cfg.dir,
		})
	}

	return output, nil
}

// Verify looks the binary up on PATH and returns its location.
func (cmd *Command) Verify(ctx context.Context, opts ...Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.New(err)
	}

	cfg := cmd.config(opts)

	path, err := exec.LookPath(cfg.name)
	if err != nil {
		return "", errors.New(&WrappedError{
			Op:  cfg.name,
			Err: errors.Errorf("%w: %w", ErrNotFound, err),
		})
	}

	return path, nil
}

// SplitArgs splits a command line into arguments using shell quoting rules.
func SplitArgs(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, errors.Errorf("splitting %q: %w", line, err)
	}

	return args, nil
}

func environ(extra map[string]string) []string {
	if len(extra) == 0 {
		return nil
	}

	env := os.Environ()
	for key, val := range extra {
		env = append(env, key+"="+val)
	}

	return env
}
