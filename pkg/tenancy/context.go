package tenancy

import (
	"context"
	"log/slog"
)

// Override is the validated company switch recorded for a single request.
// It lives exactly one request and is never persisted.
type Override struct {
	CompanyID   int64
	CompanyName string
}

// contextKey prevents collisions with other packages using context values.
type contextKey struct{}

// WithOverride records the validated company override in the context.
func WithOverride(ctx context.Context, ov Override) context.Context {
	return context.WithValue(ctx, contextKey{}, ov)
}

// OverrideFromContext returns the company override recorded for this
// request. The second return value is false when no authorized switch was
// made and callers should fall back to the token's own company claim.
func OverrideFromContext(ctx context.Context) (Override, bool) {
	ov, ok := ctx.Value(contextKey{}).(Override)
	return ov, ok
}

// CompanyIDFromContext provides direct access to the overridden company id.
func CompanyIDFromContext(ctx context.Context) (int64, bool) {
	ov, ok := OverrideFromContext(ctx)
	if !ok {
		return 0, false
	}
	return ov.CompanyID, true
}

// LoggerExtractor returns a logger context extractor that annotates log
// records with the overridden company id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := CompanyIDFromContext(ctx); ok {
			return slog.Int64("company_id", id), true
		}
		return slog.Attr{}, false
	}
}
