package tenancy

import "time"

// Config carries environment-driven settings for the ActiveCompany
// middleware.
type Config struct {
	// OperatorEmails lists login emails allowed to switch to any company.
	OperatorEmails []string `env:"TENANCY_OPERATOR_EMAILS" envSeparator:","`
	// CacheTTL is how long directory lookups are cached.
	CacheTTL time.Duration `env:"TENANCY_CACHE_TTL" envDefault:"5m"`
	// CacheSize bounds the in-memory cache.
	CacheSize int `env:"TENANCY_CACHE_SIZE" envDefault:"1000"`
}
