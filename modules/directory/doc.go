// Package directory is the Postgres-backed company directory of the farm
// platform: company records, user logins and user-company memberships. It
// implements the lookup interfaces consumed by pkg/tenancy and mounts the
// read endpoints used by the company switcher.
package directory
