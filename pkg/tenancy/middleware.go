package tenancy

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/granjalabs/avikit/pkg/claims"
)

// ActiveCompany returns middleware that resolves the X-Active-Company header
// into a request-scoped company override. The middleware never short-circuits
// the request: every validation failure leaves the override unset and passes
// through, so downstream resolution falls back to the token's company claim.
func ActiveCompany(directory Directory, members MembershipStore, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{
		cacheTTL: 5 * time.Minute,
		logger:   slog.Default(),
		header:   HeaderActiveCompany,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.cache == nil {
		cfg.cache = NewInMemoryCache()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := strings.TrimSpace(r.Header.Get(cfg.header))
			if name == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			company := cfg.lookup(r, name, directory)
			if company == nil || company.ID <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			mc, authenticated := claims.FromContext(ctx)
			if !authenticated {
				// Anonymous traffic only exists in trusted local setups;
				// the switch is granted as-is.
				ctx = WithOverride(ctx, Override{CompanyID: company.ID, CompanyName: name})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			userID, ok := claims.SubjectGUID(mc)
			if !ok {
				// Fail safe: an authenticated request without a usable
				// principal GUID never earns an override.
				cfg.logger.DebugContext(ctx, "company switch refused: no principal guid",
					slog.String("company", name))
				next.ServeHTTP(w, r)
				return
			}

			allowed := cfg.isOperator(r, userID)
			if !allowed {
				member, err := members.IsMember(ctx, userID, company.ID)
				if err != nil {
					cfg.logger.DebugContext(ctx, "company switch refused: membership lookup failed",
						slog.String("company", name), slog.Any("error", err))
					next.ServeHTTP(w, r)
					return
				}
				allowed = member
			}

			if !allowed {
				cfg.logger.DebugContext(ctx, "company switch refused: not a member",
					slog.String("company", name),
					slog.String("user_guid", userID.String()))
				next.ServeHTTP(w, r)
				return
			}

			ctx = WithOverride(ctx, Override{CompanyID: company.ID, CompanyName: name})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// lookup resolves a company by name through the cache, falling back to the
// directory. Lookup failures degrade to nil; they are diagnostics, not
// request errors.
func (c *config) lookup(r *http.Request, name string, directory Directory) *Company {
	ctx := r.Context()
	key := strings.ToLower(name)

	if cached, ok := c.cache.Get(ctx, key); ok {
		return cached
	}

	company, err := directory.FindByName(ctx, name)
	if err != nil {
		if !errors.Is(err, ErrCompanyNotFound) {
			c.logger.DebugContext(ctx, "company lookup failed",
				slog.String("company", name), slog.Any("error", err))
		}
		return nil
	}

	c.cache.Set(ctx, key, company, c.cacheTTL)
	return company
}

// isOperator reports whether the principal's login email is on the operator
// allow-list. Email lookup failures count as not-an-operator.
func (c *config) isOperator(r *http.Request, userID uuid.UUID) bool {
	if len(c.operatorEmails) == 0 || c.logins == nil {
		return false
	}

	ctx := r.Context()
	email, err := c.logins.EmailByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrLoginNotFound) {
			c.logger.DebugContext(ctx, "operator email lookup failed", slog.Any("error", err))
		}
		return false
	}

	_, ok := c.operatorEmails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
