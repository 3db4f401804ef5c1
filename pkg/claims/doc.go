// Package claims verifies bearer tokens on inbound requests and exposes the
// decoded claim set through the request context.
//
// The middleware is deliberately tolerant: a request without an Authorization
// header continues as anonymous, since parts of the platform (local tooling,
// health probes) operate without credentials. A present but invalid token is
// rejected with 401 — a bad token is never downgraded to anonymous.
//
// Claim accessors handle the encodings produced by the legacy identity
// server: numeric claims arrive as JSON strings as often as numbers, and the
// user GUID is carried under the full ASP.NET NameIdentifier claim URI with
// "sub" as fallback.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(claims.Middleware([]byte(cfg.SigningKey)))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		mc, ok := claims.FromContext(r.Context())
//		if !ok {
//			// anonymous request
//		}
//		guid, _ := claims.SubjectGUID(mc)
//	}
package claims
