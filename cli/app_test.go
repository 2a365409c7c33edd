package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gruntwork-io/go-utils/cli"
	"github.com/gruntwork-io/go-utils/cli/commands"
	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/env"
	"github.com/gruntwork-io/go-utils/pkg/fetcher"
	"github.com/gruntwork-io/go-utils/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer

	app := cli.NewAppWithWriters(log.New(log.WithOutput(io.Discard)), &stdout, io.Discard)
	err := app.RunContext(context.Background(), append([]string{cli.AppName}, args...))

	return stdout.String(), err
}

func TestKindCommand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default", []string{"kind", "[1]", `{"a":1}`, "null", "undefined", `"s"`, "1.5", "true"}, "array\nobject\nnull\nundefined\nstring\nnumber\nboolean\n"},
		{"full", []string{"kind", "--full", "[1]", "null"}, "[object Array]\n[object Null]\n"},
		{"simplified", []string{"kind", "-s", "null", "undefined"}, "null\nundefined\n"},
		{"full wins", []string{"kind", "-f", "-s", "{}"}, "[object Object]\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestKindCommandInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := run(t, "kind", "{oops")
	assert.Error(t, err)
}

func TestEqualCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "equal", `{"a":[1,{"b":2}]}`, `{"a":[1,{"b":2}]}`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "equal", `[1,2]`, `[2,1]`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, err = run(t, "equal", "--exit-code", `[1,2]`, `[2,1]`)
	assert.Error(t, err)

	_, err = run(t, "equal", "1")
	assert.ErrorIs(t, err, commands.ErrArgsCount)
}

func TestCloneCommand(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"clone"}, {"clone", "--full-copy"}} {
		out, err := run(t, append(args, `{"a":[1,{"b":"c"}]}`)...)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":[1,{"b":"c"}]}`, out)
	}
}

func TestRangeCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "range", "3", "1")
	require.NoError(t, err)
	assert.JSONEq(t, `[3,2,1]`, out)

	out, err = run(t, "range", "--at", "-1", "1", "5")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "range", "--at", "7", "1", "5")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = run(t, "range", "a", "5")
	assert.Error(t, err)
}

func TestCookieCommands(t *testing.T) {
	t.Parallel()

	out, err := run(t, "cookie", "parse", "__Host-id=abc; Path=/; Secure; SameSite=lax")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"id","value":"abc","path":"/","secure":true,"sameSite":"Lax","prefix":"__Host-"}`, out)

	out, err = run(t, "cookie", "parse", "--multiple", "a=1; b=2")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"a","value":"1"},{"name":"b","value":"2"}]`, out)

	out, err = run(t, "cookie", "format", "--path", "/", "--secure", "--http-only", "--same-site", "strict", "--prefix", "__Secure-", "id", "abc")
	require.NoError(t, err)
	assert.Equal(t, "__Secure-id=abc; Path=/; SameSite=Strict; Secure; HttpOnly\n", out)

	_, err = run(t, "cookie", "format", "--same-site", "sometimes", "id", "abc")
	assert.Error(t, err)

	_, err = run(t, "cookie", "format", "--prefix", "__Nope-", "id", "abc")
	assert.Error(t, err)
}

func TestHTTPErrorCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "http-error", "404", "missing")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"NotFound","message":"missing","error":"NotFound: missing","statusCode":404}`, out)

	out, err = run(t, "http-error", "--data", `{"id":42}`, "Conflict")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Conflict","error":"Conflict","statusCode":409,"data":{"id":42}}`, out)

	_, err = run(t, "http-error", "NoSuchStatus")
	assert.Error(t, err)
}

func TestFetchCommand(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/items" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var body any
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"method": r.Method,
			"query":  r.URL.RawQuery,
			"auth":   r.Header.Get("Authorization"),
			"trace":  r.Header.Get("X-Trace"),
			"body":   body,
		})
	}))
	t.Cleanup(server.Close)

	out, err := run(t, "--base-url", server.URL+"/v1/", "--token", "t0k", "fetch", "-X", "post", "--param", "page=2", "-H", "X-Trace=abc", "--data", `{"a":1}`, "items")
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"POST","query":"page=2","auth":"Bearer t0k","trace":"abc","body":{"a":1}}`, out)

	_, err = run(t, "--base-url", server.URL, "fetch", "missing")

	var respErr *fetcher.ResponseError

	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusNotFound, respErr.StatusCode)

	_, err = run(t, "fetch", "--param", "novalue", "items")
	assert.Error(t, err)
}

func TestGitCommand(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	out, err := run(t, "git", "version")
	require.NoError(t, err)
	assert.Regexp(t, `^\d+\.\d+`, out)

	out, err = run(t, "git", "--dir", t.TempDir(), "init --quiet")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, err := run(t, "--log-level", "loud", "kind", "1")
	assert.Error(t, err)
}

func TestFetchCommandTokenFromEnv(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"auth": r.Header.Get("Authorization")})
	}))
	t.Cleanup(server.Close)

	t.Setenv(cli.TokenEnvName, "  ")

	_, err := run(t, "--base-url", server.URL, "fetch", "--auth", "items")
	require.ErrorIs(t, err, env.ErrMissingEnv)

	out, err := run(t, "--base-url", server.URL, "fetch", "items")
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth":""}`, out)

	t.Setenv(cli.TokenEnvName, "from-env")

	out, err = run(t, "--base-url", server.URL, "fetch", "--auth", "items")
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth":"Bearer from-env"}`, out)

	out, err = run(t, "--base-url", server.URL, "--token", "from-flag", "fetch", "--auth", "items")
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth":"Bearer from-flag"}`, out)
}

func TestFetchCommandRetriesFromEnv(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	t.Cleanup(server.Close)

	t.Setenv(commands.RetriesEnvName, "1")

	out, err := run(t, "--base-url", server.URL, "fetch", "items")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, out)
	assert.Equal(t, int32(2), calls.Load())
}
