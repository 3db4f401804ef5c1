package tenancy

import (
	"log/slog"
	"strings"
	"time"
)

// config holds middleware configuration.
type config struct {
	cache          Cache
	cacheTTL       time.Duration
	logger         *slog.Logger
	logins         LoginStore
	operatorEmails map[string]struct{}
	header         string
}

// Option configures the ActiveCompany middleware.
type Option func(*config)

// WithCache sets a custom cache for directory lookups, e.g. RedisCache when
// several instances should share lookups.
func WithCache(cache Cache) Option {
	return func(c *config) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithCacheTTL sets how long directory lookups are cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOperatorEmails configures the platform-operator allow-list. Principals
// whose login email matches one of the given addresses (case-insensitively)
// may switch to any existing company regardless of membership. The login
// store is required to resolve emails; an empty list disables the check.
func WithOperatorEmails(emails []string, logins LoginStore) Option {
	return func(c *config) {
		if len(emails) == 0 || logins == nil {
			return
		}
		c.logins = logins
		c.operatorEmails = make(map[string]struct{}, len(emails))
		for _, e := range emails {
			e = strings.ToLower(strings.TrimSpace(e))
			if e != "" {
				c.operatorEmails[e] = struct{}{}
			}
		}
	}
}

// WithHeader overrides the header name the middleware reads.
func WithHeader(name string) Option {
	return func(c *config) {
		if name != "" {
			c.header = name
		}
	}
}
