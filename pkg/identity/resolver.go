package identity

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/granjalabs/avikit/pkg/claims"
	"github.com/granjalabs/avikit/pkg/tenancy"
)

// Resolver builds Identity snapshots from requests.
type Resolver struct {
	defaults Defaults
}

// NewResolver creates a resolver with the given anonymous-request defaults.
func NewResolver(defaults Defaults) *Resolver {
	return &Resolver{defaults: defaults}
}

// Resolve constructs the identity snapshot for the request. It never fails:
// every parse failure degrades to a zero value or a configured default.
//
// The company override recorded by tenancy.ActiveCompany, when present,
// takes precedence over the token's company claim.
func (res *Resolver) Resolve(r *http.Request) Identity {
	ctx := r.Context()

	id := Identity{
		CompanyName: strings.TrimSpace(r.Header.Get(tenancy.HeaderActiveCompany)),
	}
	headerCountry := countryHeader(r)

	if mc, ok := claims.FromContext(ctx); ok {
		id.Authenticated = true

		id.CompanyID, _ = claims.Int64(mc, ClaimCompanyID, ClaimCompanyID2, ClaimTenantID)
		id.UserGUID, _ = claims.SubjectGUID(mc)

		if uid, ok := claims.Int64(mc, ClaimUserID); ok {
			id.UserID = uid
		} else if id.UserGUID != uuid.Nil {
			id.UserID = DeriveUserID(id.UserGUID)
		}

		// Header wins over the claim; both only apply when positive.
		if headerCountry > 0 {
			id.CountryID = headerCountry
		} else if cc, ok := claims.Int64(mc, ClaimCountryID, ClaimCountryID2); ok && cc > 0 {
			id.CountryID = cc
		}
	} else {
		id.CompanyID = res.defaults.CompanyID
		id.UserID = res.defaults.UserID
		if headerCountry > 0 {
			id.CountryID = headerCountry
		} else {
			id.CountryID = res.defaults.CountryID
		}
	}

	if ov, ok := tenancy.OverrideFromContext(ctx); ok {
		id.CompanyID = ov.CompanyID
		if ov.CompanyName != "" {
			id.CompanyName = ov.CompanyName
		}
	}

	return id
}

func countryHeader(r *http.Request) int64 {
	raw := strings.TrimSpace(r.Header.Get(HeaderActiveCountry))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}
