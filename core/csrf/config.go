package csrf

// Config holds guard settings.
type Config struct {
	// Origin is the canonical serving origin, e.g. "https://tahmid.space".
	// When empty it is derived from each request.
	Origin           string   `env:"CSRF_ORIGIN" envDefault:""`
	CookieName       string   `env:"CSRF_COOKIE_NAME" envDefault:"csrf-token"`
	HeaderName       string   `env:"CSRF_HEADER_NAME" envDefault:"X-CSRF-Token"`
	ExemptPaths      []string `env:"CSRF_EXEMPT_PATHS" envSeparator:","`
	IsProductionLike bool     `env:"PRODUCTION_LIKE" envDefault:"false"`
}

// DefaultConfig returns the configuration used when none is loaded from the environment.
func DefaultConfig() Config {
	return Config{
		CookieName: "csrf-token",
		HeaderName: "X-CSRF-Token",
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CookieName == "" {
		c.CookieName = d.CookieName
	}
	if c.HeaderName == "" {
		c.HeaderName = d.HeaderName
	}
	return c
}
