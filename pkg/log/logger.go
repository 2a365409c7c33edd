// Package log wraps logrus so the rest of the module logs through a single, cloneable Logger.
package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps the logrus package to have full control over implementing the required functionality,
// such as adding or removing fields. This also provides developers with an easier way to clone and set parameters.
type Logger interface {
	// Clone creates a new Logger instance with a copy of the fields from the current one.
	Clone() Logger

	// SetOptions sets the given options to the instance.
	SetOptions(opts ...Option)

	// WithOptions clones and sets the given options for the new instance.
	WithOptions(opts ...Option) Logger

	// Level returns log level.
	Level() Level

	// SetLevel parses and sets log level.
	SetLevel(str string) error

	// WithField adds a single field to the Logger and returns partly cloning instance.
	WithField(key string, value any) Logger

	// WithFields adds a struct of fields to the Logger.
	WithFields(fields Fields) Logger

	// WithError adds an error as single field to the Logger.
	WithError(err error) Logger

	// WithContext adds a context to the Logger.
	WithContext(ctx context.Context) Logger

	// Writer returns an io.Writer that writes to the Logger at the info log level.
	Writer() *io.PipeWriter

	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// Fields is the type used to pass arguments to `WithFields`.
type Fields map[string]any

type logger struct {
	*logrus.Entry
}

func wrapEntry(entry *logrus.Entry) *logger {
	return &logger{Entry: entry}
}

// New returns a new Logger instance.
func New(opts ...Option) Logger {
	logger := wrapEntry(logrus.NewEntry(logrus.New()))
	logger.SetOptions(opts...)

	return logger
}

// Discard returns a Logger that drops every entry.
func Discard() Logger {
	return New(WithOutput(io.Discard), WithLevel(ErrorLevel))
}

// Clone implements the Logger interface method.
func (logger *logger) Clone() Logger {
	return logger.clone()
}

// SetOptions implements the Logger interface method.
func (logger *logger) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(logger)
	}
}

// WithOptions implements the Logger interface method.
func (logger *logger) WithOptions(opts ...Option) Logger {
	if len(opts) == 0 {
		return logger
	}

	logger = logger.clone()
	logger.SetOptions(opts...)

	return logger
}

// Level returns log level.
func (logger *logger) Level() Level {
	return FromLogrusLevel(logger.Logger.Level)
}

// SetLevel parses and sets log level.
func (logger *logger) SetLevel(str string) error {
	level, err := ParseLevel(str)
	if err != nil {
		return err
	}

	logger.Logger.SetLevel(level.ToLogrusLevel())

	return nil
}

// WithField implements the Logger interface method.
func (logger *logger) WithField(key string, value any) Logger {
	return wrapEntry(logger.Entry.WithField(key, value))
}

// WithFields implements the Logger interface method.
func (logger *logger) WithFields(fields Fields) Logger {
	return wrapEntry(logger.Entry.WithFields(logrus.Fields(fields)))
}

// WithError implements the Logger interface method.
func (logger *logger) WithError(err error) Logger {
	return wrapEntry(logger.Entry.WithError(err))
}

// WithContext implements the Logger interface method.
func (logger *logger) WithContext(ctx context.Context) Logger {
	return wrapEntry(logger.Entry.WithContext(ctx))
}

func (logger *logger) clone() *logger {
	parent := logger.Logger

	newLogger := logrus.New()
	newLogger.SetOutput(parent.Out)
	newLogger.SetLevel(parent.Level)
	newLogger.SetFormatter(parent.Formatter)
	newLogger.ReplaceHooks(parent.Hooks)

	return wrapEntry(logrus.NewEntry(newLogger).WithFields(logger.Data))
}
