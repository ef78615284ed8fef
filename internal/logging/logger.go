// Package logging defines the minimal structured-logging interface shared by
// all myGaadi client components. The concrete implementation wraps slog.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Warn(ctx, "snapshot read failed", "key", key, "err", err)
type Logger interface {
	// Debug logs diagnostic detail that is normally filtered out.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs an unusual but recovered condition, such as a storage read
	// falling back to a default value.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
