// Package config loads typed configuration structs from environment
// variables.
//
// It combines github.com/joho/godotenv (optional .env autoload) with
// github.com/caarlos0/env/v11 (struct-tag parsing) and caches each loaded
// type for the lifetime of the process, so packages can call Load for their
// own config struct without coordinating initialization order.
//
// # Usage
//
//	type Defaults struct {
//		CompanyID int64 `env:"IDENTITY_DEFAULT_COMPANY_ID" envDefault:"1"`
//	}
//
//	var cfg Defaults
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics on failure and suits configuration the process cannot
// start without.
package config
