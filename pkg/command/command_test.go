package command_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}
}

func TestExecuteCapturesOutput(t *testing.T) {
	t.Parallel()
	requireShell(t)

	sh := command.New("sh")

	out, err := sh.Execute(context.Background(), []string{"-c", "echo '  hello  '; echo oops >&2"})
	require.NoError(t, err)

	assert.True(t, out.Success())
	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "hello", out.DecodedStdout())
	assert.Equal(t, "oops", out.DecodedStderr())
}

func TestExecuteNonZeroExit(t *testing.T) {
	t.Parallel()
	requireShell(t)

	sh := command.New("sh")

	out, err := sh.Execute(context.Background(), []string{"-c", "echo failing >&2; exit 3"})
	require.NoError(t, err)
	assert.False(t, out.Success())
	assert.Equal(t, 3, out.ExitCode)

	_, err = sh.Execute(context.Background(), []string{"-c", "exit 3"}, command.WithFailOnError(true))
	require.Error(t, err)

	var cmdErr *command.Error

	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.Output.ExitCode)
	assert.Equal(t, "sh", cmdErr.Name)
	assert.Contains(t, err.Error(), "command failed with code 3")
}

func TestExecutePerCallOverridesDefault(t *testing.T) {
	t.Parallel()
	requireShell(t)

	sh := command.New("sh", command.WithFailOnError(true))

	out, err := sh.Execute(context.Background(), []string{"-c", "exit 1"}, command.WithFailOnError(false))
	require.NoError(t, err)
	assert.Equal(t, 1, out.ExitCode)
}

func TestExecuteDirAndEnv(t *testing.T) {
	t.Parallel()
	requireShell(t)

	dir := t.TempDir()

	sh := command.New("sh", command.WithDir(dir), command.WithEnv(map[string]string{"GREETING": "hi"}))

	out, err := sh.Execute(context.Background(), []string{"-c", "echo $GREETING; pwd"}, command.WithEnv(map[string]string{"GREETING": "hey"}))
	require.NoError(t, err)
	assert.Contains(t, out.DecodedStdout(), "hey")

	// per call env must not leak back into the defaults
	assert.Equal(t, "hi", sh.Env["GREETING"])
}

func TestExecuteMissingBinary(t *testing.T) {
	t.Parallel()

	cmd := command.New("definitely-not-a-real-binary-go-utils")

	_, err := cmd.Execute(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, command.ErrCommandSpawn)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.NotEmpty(t, errors.ErrorStack(err))

	var wrapped *command.WrappedError

	require.True(t, errors.As(err, &wrapped))
	assert.Equal(t, "definitely-not-a-real-binary-go-utils", wrapped.Op)

	_, err = cmd.Verify(context.Background())
	assert.ErrorIs(t, err, command.ErrNotFound)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.NotEmpty(t, errors.ErrorStack(err))
}

func TestExecuteWithoutName(t *testing.T) {
	t.Parallel()

	_, err := (&command.Command{}).Execute(context.Background(), nil)
	assert.ErrorIs(t, err, command.ErrNoName)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	requireShell(t)

	path, err := command.New("sh").Verify(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = command.New("sh").Verify(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplitArgs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		line     string
		expected []string
	}{
		{`status --short`, []string{"status", "--short"}},
		{`commit -m "first commit"`, []string{"commit", "-m", "first commit"}},
		{`log --format='%h %s'`, []string{"log", "--format=%h %s"}},
		{``, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			t.Parallel()

			args, err := command.SplitArgs(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, args)
		})
	}

	_, err := command.SplitArgs(`commit -m "unterminated`)
	assert.Error(t, err)
}
