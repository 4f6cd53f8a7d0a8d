package pg

import "context"

// logger is the subset of *slog.Logger the migration runner needs, so
// goose output is routed into application logging instead of stdout.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
