package log

import "context"

type ctxKey byte

const loggerContextKey ctxKey = iota

// ContextWithLogger returns a new context that carries the given logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext returns the logger stored in the context, or a discarding logger if there is none.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerContextKey).(Logger); ok && logger != nil {
		return logger
	}

	return Discard()
}
