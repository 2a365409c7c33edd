package command

import (
	"maps"

	"github.com/gruntwork-io/go-utils/pkg/log"
)

// Option overrides a command default, either at construction or for a single execution.
type Option func(*config)

type config struct {
	logger      log.Logger
	env         map[string]string
	name        string
	dir         string
	failOnError bool
}

func (cmd *Command) config(opts []Option) *config {
	cfg := &config{
		logger:      cmd.Logger,
		env:         maps.Clone(cmd.Env),
		name:        cmd.Name,
		dir:         cmd.Dir,
		failOnError: cmd.FailOnError,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = log.Discard()
	}

	return cfg
}

// WithFailOnError turns a non-zero exit into an *Error.
func WithFailOnError(fail bool) Option {
	return func(cfg *config) {
		cfg.failOnError = fail
	}
}

// WithDir sets the working directory.
func WithDir(dir string) Option {
	return func(cfg *config) {
		cfg.dir = dir
	}
}

// WithEnv adds environment variables on top of the current process environment.
func WithEnv(env map[string]string) Option {
	return func(cfg *config) {
		if cfg.env == nil {
			cfg.env = make(map[string]string, len(env))
		}

		maps.Copy(cfg.env, env)
	}
}

// WithName runs a different binary.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger log.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
