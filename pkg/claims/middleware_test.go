package claims_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granjalabs/avikit/pkg/claims"
)

var signingKey = []byte("test-signing-key-0123456789abcdef")

func signToken(t *testing.T, mc jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(signingKey)
	require.NoError(t, err)
	return token
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("valid token populates claims", func(t *testing.T) {
		t.Parallel()

		handler := claims.Middleware(signingKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mc, ok := claims.FromContext(r.Context())
			require.True(t, ok)
			assert.True(t, claims.IsAuthenticated(r.Context()))

			companyID, ok := claims.Int64(mc, "company_id")
			require.True(t, ok)
			assert.Equal(t, int64(7), companyID)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"company_id": "7"}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header continues as anonymous", func(t *testing.T) {
		t.Parallel()

		handler := claims.Middleware(signingKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, claims.IsAuthenticated(r.Context()))
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		t.Parallel()

		handler := claims.Middleware(signingKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		t.Parallel()

		other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).
			SignedString([]byte("some-other-key"))
		require.NoError(t, err)

		handler := claims.Middleware(signingKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty signing key panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { claims.Middleware(nil) })
	})
}

func TestRequireAuthenticated(t *testing.T) {
	t.Parallel()

	handler := claims.RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("rejects anonymous", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("passes authenticated", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(claims.WithClaims(req.Context(), jwt.MapClaims{"sub": "x"}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
