// Package logging provides loggers associated with a context.
package logging

import (
	"context"

	"go.uber.org/zap"
)

// Logger is used by all components for logging.
type Logger = *zap.SugaredLogger

// LoggerFactory retrieves the logger for a given module.
type LoggerFactory func(module string) Logger

type contextKey string

const loggerKey contextKey = "logger"

//nolint:gochecknoglobals
var nullLogger = zap.NewNop().Sugar()

// Module returns an accessor for the named module logger associated
// with a context. Contexts without a logger use the null logger.
func Module(module string) func(ctx context.Context) Logger {
	return func(ctx context.Context) Logger {
		if f, ok := ctx.Value(loggerKey).(LoggerFactory); ok {
			return f(module)
		}

		return nullLogger
	}
}

// WithLogger returns a derived context with an associated logger factory.
func WithLogger(ctx context.Context, f LoggerFactory) context.Context {
	if f == nil {
		f = func(module string) Logger { return nullLogger }
	}

	return context.WithValue(ctx, loggerKey, f)
}

// NullLogger is a logger that discards all log messages.
func NullLogger() Logger {
	return nullLogger
}
