package identity

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// HeaderActiveCountry carries an optional numeric country override used by
// reporting endpoints that aggregate across countries.
const HeaderActiveCountry = "X-Active-Pais"

// Claim names recognized when resolving the snapshot. Company id claims are
// tried in order; the legacy identity server issued company_id, newer tokens
// use companyId or tenant_id.
const (
	ClaimCompanyID  = "company_id"
	ClaimCompanyID2 = "companyId"
	ClaimTenantID   = "tenant_id"
	ClaimUserID     = "user_id"
	ClaimCountryID  = "pais_id"
	ClaimCountryID2 = "paisId"
)

// Identity is the authoritative identity/tenancy snapshot for one request.
// It is immutable once constructed and discarded when the request ends.
type Identity struct {
	// CompanyID is the effective company: the authorized override when one
	// was recorded, otherwise the token claim, otherwise the configured
	// default.
	CompanyID int64 `json:"company_id"`
	// CompanyName echoes the X-Active-Company header (or the override name).
	// Informational: it may name a company the caller was refused.
	CompanyName string `json:"company_name,omitempty"`
	// UserID is the numeric user id, possibly derived from the GUID.
	UserID int64 `json:"user_id"`
	// UserGUID is uuid.Nil when the token carried no parsable subject.
	UserGUID uuid.UUID `json:"user_guid,omitempty"`
	// CountryID is 0 when no country was resolved.
	CountryID int64 `json:"country_id,omitempty"`
	// Authenticated reports whether the request carried a verified token.
	Authenticated bool `json:"authenticated"`
}

// HasCountry reports whether a country was resolved for the request.
func (id Identity) HasCountry() bool { return id.CountryID > 0 }

// DeriveUserID maps a user GUID to a stable non-negative numeric id for
// records that predate GUID adoption and still key on integers. The mapping
// is deterministic: the same GUID always yields the same id.
func DeriveUserID(guid uuid.UUID) int64 {
	h := fnv.New32a()
	h.Write([]byte(guid.String()))
	v := int64(int32(h.Sum32()))
	if v < 0 {
		v = -v
	}
	return v
}
