// Package pg bootstraps the PostgreSQL layer: pooled connectivity through
// pgx/v5, schema migrations through goose/v3 and a health check for
// readiness probes.
//
// The company directory, membership and login tables live in Postgres; this
// package only establishes the plumbing. Typical startup:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil { ... }
package pg
