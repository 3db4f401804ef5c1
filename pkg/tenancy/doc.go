// Package tenancy resolves the active company for a request in the
// multi-tenant farm platform.
//
// A company (granja operator) is the tenancy boundary: every lot, shed and
// report belongs to exactly one company. The bearer token pins a caller to
// the company it was issued for, but users who belong to several companies
// switch between them by sending the company name in the X-Active-Company
// header. The ActiveCompany middleware validates that header against the
// company directory and the caller's memberships and, only when the switch
// is authorized, records a request-scoped override that downstream
// resolution prefers over the token claim.
//
// The middleware never rejects a request. Every failure — unknown company
// name, missing user claim, no membership — silently leaves the override
// unset so the caller keeps operating under its token company. Each of these
// decisions is logged at debug level so misconfigured headers stay
// debuggable without becoming user-visible errors.
//
// # Authorization rules
//
// In order of evaluation:
//
//  1. Blank or absent header: no override.
//  2. Unknown company name (case-insensitive lookup): no override.
//  3. Anonymous request: override granted unconditionally. Anonymous traffic
//     only exists in trusted local environments gated elsewhere.
//  4. Authenticated principal without a parsable GUID claim: no override.
//  5. Principal whose email is on the configured operator allow-list:
//     override granted for any existing company.
//  6. Otherwise the override is granted iff a membership row exists for
//     (user, company).
//
// # Usage
//
//	mw := tenancy.ActiveCompany(directory, memberships,
//		tenancy.WithOperatorEmails(cfg.OperatorEmails, logins),
//		tenancy.WithLogger(log),
//	)
//	r.Use(claimsMiddleware, mw, identityMiddleware)
package tenancy
