// Package git wraps the git binary.
package git

import (
	"context"
	"strings"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/command"
	"github.com/hashicorp/go-version"
)

const (
	binary = "git"

	versionPrefix = "git version "
)

var ErrParseVersion = errors.New("unable to parse git version")

// Git runs git subcommands and returns their trimmed stdout.
type Git struct {
	*command.Command
}

// New returns a git wrapper. Failing on error is enabled unless an option disables it.
func New(opts ...command.Option) *Git {
	opts = append([]command.Option{command.WithFailOnError(true)}, opts...)

	return &Git{Command: command.New(binary, opts...)}
}

// Run executes an arbitrary git subcommand.
func (git *Git) Run(ctx context.Context, subcommand string, args []string, opts ...command.Option) (string, error) {
	out, err := git.Execute(ctx, append([]string{subcommand}, args...), opts...)
	if err != nil {
		return "", err
	}

	return out.DecodedStdout(), nil
}

// Status runs `git status`.
func (git *Git) Status(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "status", args, opts...)
}

// Add runs `git add`.
func (git *Git) Add(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "add", args, opts...)
}

// Commit runs `git commit`.
func (git *Git) Commit(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "commit", args, opts...)
}

// Log runs `git log`.
func (git *Git) Log(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "log", args, opts...)
}

// Push runs `git push`.
func (git *Git) Push(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "push", args, opts...)
}

// Fetch runs `git fetch`.
func (git *Git) Fetch(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "fetch", args, opts...)
}

// Pull runs `git pull`.
func (git *Git) Pull(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "pull", args, opts...)
}

// Clone runs `git clone`.
func (git *Git) Clone(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "clone", args, opts...)
}

// Reset runs `git reset`.
func (git *Git) Reset(ctx context.Context, args []string, opts ...command.Option) (string, error) {
	return git.Run(ctx, "reset", args, opts...)
}

// Version returns the version of the installed git binary.
func (git *Git) Version(ctx context.Context, opts ...command.Option) (*version.Version, error) {
	out, err := git.Execute(ctx, []string{"--version"}, opts...)
	if err != nil {
		return nil, err
	}

	return ParseVersion(out.DecodedStdout())
}

// ParseVersion extracts the version from `git --version` output,
// e.g. "git version 2.39.3 (Apple Git-145)".
func ParseVersion(output string) (*version.Version, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(output), versionPrefix)
	if !ok {
		return nil, errors.Errorf("%w: %q", ErrParseVersion, output)
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, errors.Errorf("%w: %q", ErrParseVersion, output)
	}

	// Windows builds report e.g. "2.42.0.windows.2".
	raw, _, _ := strings.Cut(fields[0], ".windows")

	ver, err := version.NewVersion(raw)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrParseVersion, err)
	}

	return ver, nil
}
