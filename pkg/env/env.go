// Package env reads configuration values from environment variables.
package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/gruntwork-io/go-utils/internal/errors"
)

// ErrMissingEnv is returned by GetSafeEnv when the variable is unset or blank.
var ErrMissingEnv = errors.New("no value for env var")

// GetBoolEnv parses the variable with strconv.ParseBool. Unset, blank or unparsable values yield fallback.
func GetBoolEnv(key string, fallback bool) bool {
	if strVal, ok := LookupEnv(key); ok {
		if val, err := strconv.ParseBool(strVal); err == nil {
			return val
		}
	}

	return fallback
}

// GetIntEnv parses the variable as a base 10 integer. Unset, blank or unparsable values yield fallback.
func GetIntEnv(key string, fallback int) int {
	if strVal, ok := LookupEnv(key); ok {
		if val, err := strconv.Atoi(strVal); err == nil {
			return val
		}
	}

	return fallback
}

// GetStringEnv returns the trimmed variable, or fallback when it is unset or blank.
func GetStringEnv(key string, fallback string) string {
	if val, ok := LookupEnv(key); ok {
		return val
	}

	return fallback
}

// GetSafeEnv returns the trimmed value of a variable that must be set. Unset and blank
// variables both fail with ErrMissingEnv.
func GetSafeEnv(key string) (string, error) {
	val, ok := LookupEnv(key)
	if !ok {
		return "", errors.Errorf("%w: %s", ErrMissingEnv, key)
	}

	return val, nil
}

// LookupEnv is os.LookupEnv with the value trimmed. A blank value counts as not present.
func LookupEnv(key string) (string, bool) {
	if key == "" {
		return "", false
	}

	val, ok := os.LookupEnv(key)
	val = strings.TrimSpace(val)

	isPresent := ok && val != ""

	return val, isPresent
}
