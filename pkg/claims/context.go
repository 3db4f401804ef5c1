package claims

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithClaims stores the verified claim set in the context.
func WithClaims(ctx context.Context, mc jwt.MapClaims) context.Context {
	return context.WithValue(ctx, contextKey{}, mc)
}

// FromContext retrieves the verified claim set from the context.
// The second return value is false for anonymous requests.
func FromContext(ctx context.Context) (jwt.MapClaims, bool) {
	mc, ok := ctx.Value(contextKey{}).(jwt.MapClaims)
	return mc, ok
}

// IsAuthenticated reports whether the request carried a verified token.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}
