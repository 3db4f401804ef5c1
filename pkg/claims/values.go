package claims

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claim names used across the platform. The legacy identity server issues
// the user GUID under the full ASP.NET NameIdentifier URI; newer tokens use
// the registered "sub" claim.
const (
	ClaimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimSubject        = "sub"
)

// String returns the first present non-empty string claim among names.
func String(mc jwt.MapClaims, names ...string) (string, bool) {
	for _, name := range names {
		v, ok := mc[name]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Int64 returns the first claim among names that parses as an integer.
// Tokens from the legacy identity server carry numeric claims as strings,
// while JSON decoding of native numbers yields float64, so both forms are
// accepted. Claims that are present but unparsable are skipped.
func Int64(mc jwt.MapClaims, names ...string) (int64, bool) {
	for _, name := range names {
		v, ok := mc[name]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return int64(t), true
		case int64:
			return t, true
		case int:
			return int64(t), true
		case json.Number:
			if n, err := t.Int64(); err == nil {
				return n, true
			}
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// SubjectGUID extracts the principal's GUID from the NameIdentifier claim,
// falling back to "sub". Returns false when neither is present or the value
// is not a valid UUID.
func SubjectGUID(mc jwt.MapClaims) (uuid.UUID, bool) {
	raw, ok := String(mc, ClaimNameIdentifier, ClaimSubject)
	if !ok {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}
