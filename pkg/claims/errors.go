package claims

import "errors"

var (
	ErrMissingSigningKey = errors.New("claims: missing signing key")
	ErrInvalidToken      = errors.New("claims: invalid token")
)
