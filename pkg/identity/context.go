package identity

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithIdentity stores the snapshot in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext retrieves the identity snapshot from the context.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// MustFromContext retrieves the identity snapshot and panics when none is
// present. Use only in handlers mounted behind Middleware.
func MustFromContext(ctx context.Context) Identity {
	id, ok := FromContext(ctx)
	if !ok {
		panic("identity: no identity in context")
	}
	return id
}

// LoggerExtractor returns a logger context extractor that annotates log
// records with the effective company and user ids.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("identity",
			slog.Int64("company_id", id.CompanyID),
			slog.Int64("user_id", id.UserID),
		), true
	}
}
