package log

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Option configures a logger instance.
type Option func(logger *logger)

func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.Logger.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets the destination writer. Colors are disabled unless the writer is a terminal.
func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.Logger.SetOutput(output)

		if formatter, ok := logger.Logger.Formatter.(*logrus.TextFormatter); ok {
			formatter.DisableColors = !isTerminal(output)
		}
	}
}

func WithFormatter(formatter logrus.Formatter) Option {
	return func(logger *logger) {
		logger.Logger.SetFormatter(formatter)
	}
}

// WithJSONFormat switches the logger to logrus' JSON formatter.
func WithJSONFormat() Option {
	return WithFormatter(&logrus.JSONFormatter{})
}

func WithHooks(hooks ...logrus.Hook) Option {
	return func(logger *logger) {
		for _, hook := range hooks {
			logger.Logger.AddHook(hook)
		}
	}
}

func isTerminal(output io.Writer) bool {
	file, ok := output.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
