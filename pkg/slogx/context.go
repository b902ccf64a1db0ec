package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithPrincipal tags the request logger with the authenticated caller.
func WithPrincipal(ctx context.Context, userID, sessionID int64) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With(
		slog.Int64("user_id", userID),
		slog.Int64("session_id", sessionID),
	))
}
