package claims

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Middleware verifies HS256 bearer tokens and injects the claim set into the
// request context. Requests without an Authorization header pass through as
// anonymous; requests with a malformed or badly signed token are rejected
// with 401.
func Middleware(signingKey []byte) func(http.Handler) http.Handler {
	if len(signingKey) == 0 {
		panic(ErrMissingSigningKey)
	}

	// Restricting accepted methods prevents algorithm confusion attacks.
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			mc := jwt.MapClaims{}
			if _, err := parser.ParseWithClaims(raw, mc, func(*jwt.Token) (any, error) {
				return signingKey, nil
			}); err != nil {
				http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), mc)))
		})
	}
}

// RequireAuthenticated rejects anonymous requests with 401. Mount after
// Middleware on routes that cannot operate without a principal.
func RequireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAuthenticated(r.Context()) {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
