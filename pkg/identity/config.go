package identity

// Defaults are applied to anonymous requests. They exist for trusted local
// and development flows; production traffic always carries a token. Injected
// explicitly so tests can supply fixed values without touching the process
// environment.
type Defaults struct {
	CompanyID int64 `env:"IDENTITY_DEFAULT_COMPANY_ID" envDefault:"1"`
	UserID    int64 `env:"IDENTITY_DEFAULT_USER_ID" envDefault:"0"`
	CountryID int64 `env:"IDENTITY_DEFAULT_COUNTRY_ID" envDefault:"0"`
}
