package tenancy

import "errors"

var (
	// ErrCompanyNotFound is returned by Directory implementations when no
	// company matches the requested name.
	ErrCompanyNotFound = errors.New("tenancy: company not found")

	// ErrLoginNotFound is returned by LoginStore implementations when the
	// user has no login record.
	ErrLoginNotFound = errors.New("tenancy: login not found")

	// ErrNoOverrideInContext is returned when an override is required but
	// none was recorded for the request.
	ErrNoOverrideInContext = errors.New("tenancy: no company override in context")
)
