// Package logging is the structured logger handed to the client-side session
// and state packages.  The server logs through echo and the std log package;
// the client library takes a Logger so embedding apps can route it.
package logging

import "context"

// Logger is a context-aware, structured logger.  Args are key/value pairs:
//
//	log.Warn(ctx, "remote progress update failed", "course_id", id, "err", err)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
