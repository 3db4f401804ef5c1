package tenancy

import (
	"context"

	"github.com/google/uuid"
)

// HeaderActiveCompany carries the requested company name. The value is
// trimmed and matched case-insensitively against the company directory.
const HeaderActiveCompany = "X-Active-Company"

// Company is the tenancy boundary of the platform. The directory owns the
// records; this package only reads them.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Directory looks companies up by name. Names are unique case-insensitively.
type Directory interface {
	// FindByName returns the company whose name matches case-insensitively.
	// Returns ErrCompanyNotFound when no company matches.
	FindByName(ctx context.Context, name string) (*Company, error)
}

// MembershipStore answers whether a user may act within a company.
// The existence of a membership row is the sole authorization fact checked.
type MembershipStore interface {
	IsMember(ctx context.Context, userID uuid.UUID, companyID int64) (bool, error)
}

// LoginStore resolves a user's login email. Consulted only for the operator
// allow-list check.
type LoginStore interface {
	// EmailByUserID returns ErrLoginNotFound when the user has no login row.
	EmailByUserID(ctx context.Context, userID uuid.UUID) (string, error)
}
