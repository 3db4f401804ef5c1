package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/granjalabs/avikit/pkg/claims"
	"github.com/granjalabs/avikit/pkg/identity"
	"github.com/granjalabs/avikit/pkg/tenancy"
)

// CompanyLister lists the companies a user belongs to.
type CompanyLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]tenancy.Company, error)
}

// Router exposes the identity/tenancy read endpoints:
//
//	GET /me         → the resolved identity snapshot for the request
//	GET /companies  → companies the authenticated caller may switch to
//
// Mount behind the claims, tenancy and identity middlewares:
//
//	r.Mount("/directory", directory.Router(store, log))
func Router(lister CompanyLister, log *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Get("/me", func(w http.ResponseWriter, req *http.Request) {
		id, ok := identity.FromContext(req.Context())
		if !ok {
			http.Error(w, "identity not resolved", http.StatusInternalServerError)
			return
		}
		respond(w, log, http.StatusOK, id)
	})

	r.With(claims.RequireAuthenticated).Get("/companies", func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		mc, _ := claims.FromContext(ctx)
		userID, ok := claims.SubjectGUID(mc)
		if !ok {
			http.Error(w, "token carries no user guid", http.StatusForbidden)
			return
		}

		companies, err := lister.ListByUser(ctx, userID)
		if err != nil {
			log.ErrorContext(ctx, "failed to list companies", slog.Any("error", err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if companies == nil {
			companies = []tenancy.Company{}
		}
		respond(w, log, http.StatusOK, companies)
	})

	return r
}

func respond(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", slog.Any("error", err))
	}
}
