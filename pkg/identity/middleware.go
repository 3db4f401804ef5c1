package identity

import "net/http"

// Middleware resolves the identity snapshot once and stores it in the
// request context. Mount after the claims and tenancy middlewares so the
// snapshot sees both the verified token and any company override.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithIdentity(r.Context(), res.Resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
