// Package identity builds the per-request identity snapshot consumed by all
// business handlers of the farm platform.
//
// The snapshot combines four sources, resolved once per request into an
// immutable Identity value:
//
//   - bearer-token claims (company, user GUID, numeric user id, country);
//   - the company override recorded by the tenancy middleware, which wins
//     over the token's company claim;
//   - the X-Active-Company and X-Active-Pais request headers;
//   - configured defaults applied to anonymous requests.
//
// Construction never fails. Malformed claims and headers resolve to zero
// values, keeping a best-effort identity available to every handler; real
// authorization failures are caught by per-resource checks downstream.
//
// Earlier revisions of the platform kept the override keys and the identity
// snapshot separate and required every caller to compose them. Middleware
// here performs that composition once, so handlers read a single value:
//
//	r.Use(claims.Middleware(key), tenancy.ActiveCompany(dir, members), identity.Middleware(resolver))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		id := identity.MustFromContext(r.Context())
//		_ = id.CompanyID // effective company, override already applied
//	}
package identity
