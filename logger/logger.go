// Package logger resolves the *slog.Logger a piece of library code should log to.
//
// The collation packages never configure logging themselves. Callers either rely on
// slog.Default, or attach a logger to the context they pass in with WithLogger.
package logger

import (
	"context"
	"log/slog"
)

// It's considered good practice to use unexported custom types for context keys.
// This avoids collisions with other packages that might be using the same string
// values for their own keys.
type contextKey string

const (
	loggerKey    contextKey = "logger"
	subsystemKey contextKey = "subsystem"
	valuesKey    contextKey = "loggerValues"
)

// DefaultSubsystem is attached to every logger unless the context overrides it.
const DefaultSubsystem = "collate"

// WithLogger returns a context carrying the given logger. Get prefers it over slog.Default.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, loggerKey, logger)
}

// WithSubsystem overrides the subsystem name attached to log records.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, subsystemKey, subsystem)
}

// GetSubsystem returns the subsystem from the context, or DefaultSubsystem.
func GetSubsystem(ctx context.Context) string {
	if ctx == nil {
		return DefaultSubsystem
	}

	if val, ok := ctx.Value(subsystemKey).(string); ok {
		return val
	}

	return DefaultSubsystem
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		// Corner case, don't bother creating a new context.
		return ctx
	}

	existing, _ := ctx.Value(valuesKey).([]any)
	vals := append(append([]any{}, existing...), values...)

	return context.WithValue(ctx, valuesKey, vals)
}

// Get returns the logger for the given context. If more than one context is
// given only the first non-nil one is used; with none, the default logger is returned.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	logger, ok := realCtx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	logger = logger.With("subsystem", GetSubsystem(realCtx))

	if vals, ok := realCtx.Value(valuesKey).([]any); ok && len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
