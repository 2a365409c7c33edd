package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/command"
	"github.com/gruntwork-io/go-utils/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		output   string
		expected string
	}{
		{"git version 2.43.0", "2.43.0"},
		{"git version 2.39.3 (Apple Git-145)\n", "2.39.3"},
		{"git version 2.42.0.windows.2", "2.42.0"},
	}

	for _, tc := range testCases {
		t.Run(tc.output, func(t *testing.T) {
			t.Parallel()

			ver, err := git.ParseVersion(tc.output)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ver.String())
		})
	}
}

func TestParseVersionInvalid(t *testing.T) {
	t.Parallel()

	for _, output := range []string{"", "hg version 6.0", "git version ", "git version banana"} {
		_, err := git.ParseVersion(output)
		assert.ErrorIs(t, err, git.ErrParseVersion, output)
	}
}

func TestRepositoryWorkflow(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	ctx := context.Background()
	dir := t.TempDir()

	repo := git.New(
		command.WithDir(dir),
		command.WithEnv(map[string]string{
			"GIT_AUTHOR_NAME":     "Test",
			"GIT_AUTHOR_EMAIL":    "test@example.com",
			"GIT_COMMITTER_NAME":  "Test",
			"GIT_COMMITTER_EMAIL": "test@example.com",
			"GIT_CONFIG_NOSYSTEM": "1",
		}),
	)

	ver, err := repo.Version(ctx)
	require.NoError(t, err)
	assert.Positive(t, ver.Segments()[0])

	_, err = repo.Run(ctx, "init", []string{"--quiet"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello\n"), 0o644))

	status, err := repo.Status(ctx, []string{"--porcelain"})
	require.NoError(t, err)
	assert.Equal(t, "?? README.md", status)

	_, err = repo.Add(ctx, []string{"README.md"})
	require.NoError(t, err)

	_, err = repo.Commit(ctx, []string{"--quiet", "-m", "first commit"})
	require.NoError(t, err)

	logOut, err := repo.Log(ctx, []string{"--format=%s"})
	require.NoError(t, err)
	assert.Equal(t, "first commit", logOut)

	_, err = repo.Reset(ctx, []string{"--quiet", "--hard", "HEAD"})
	require.NoError(t, err)

	_, err = repo.Run(ctx, "checkout", []string{"no-such-branch"})

	var cmdErr *command.Error

	require.True(t, errors.As(err, &cmdErr))
	assert.NotZero(t, cmdErr.Output.ExitCode)
}
