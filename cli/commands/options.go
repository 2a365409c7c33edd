// Package commands holds the go-utils CLI commands.
package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/gruntwork-io/go-utils/internal/errors"
	"github.com/gruntwork-io/go-utils/pkg/kind"
	"github.com/gruntwork-io/go-utils/pkg/log"
)

const (
	TokenEnvName   = "GO_UTILS_TOKEN" //nolint:gosec
	RetriesEnvName = "GO_UTILS_FETCH_RETRIES"
)

// undefinedArg is accepted wherever a JSON value is expected and stands for a missing value.
const undefinedArg = "undefined"

var ErrArgsCount = errors.New("wrong number of arguments")

// Options is shared by every command; global flags fill it before a command runs.
type Options struct {
	Logger  log.Logger
	BaseURL string
	Token   string
}

func parseValue(arg string) (any, error) {
	if strings.TrimSpace(arg) == undefinedArg {
		return kind.Absent, nil
	}

	var val any
	if err := json.Unmarshal([]byte(arg), &val); err != nil {
		return nil, errors.Errorf("parsing %q as JSON: %w", arg, err)
	}

	return val, nil
}

func parseValues(args []string) ([]any, error) {
	vals := make([]any, 0, len(args))

	for _, arg := range args {
		val, err := parseValue(arg)
		if err != nil {
			return nil, err
		}

		vals = append(vals, val)
	}

	return vals, nil
}

func writeJSON(w io.Writer, val any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(val); err != nil {
		return errors.New(err)
	}

	return nil
}

func expectArgs(args []string, minCount, maxCount int) error {
	if len(args) < minCount || len(args) > maxCount {
		return errors.Errorf("%w: got %d, expected between %d and %d", ErrArgsCount, len(args), minCount, maxCount)
	}

	return nil
}
