package visitor

import "time"

// Config holds tracker settings. Defaults match the production deployment.
type Config struct {
	CookieName       string        `env:"VISITOR_COOKIE_NAME" envDefault:"visitor_id"`
	CookieMaxAge     time.Duration `env:"VISITOR_COOKIE_MAX_AGE" envDefault:"8760h"`
	SessionTTL       time.Duration `env:"VISITOR_SESSION_TTL" envDefault:"5m"`
	SessionKeyPrefix string        `env:"VISITOR_SESSION_PREFIX" envDefault:"session:"`
	CounterKey       string        `env:"VISITOR_COUNTER_KEY" envDefault:"totalVisitors"`
	StoreTimeout     time.Duration `env:"VISITOR_STORE_TIMEOUT" envDefault:"500ms"`
	IsProductionLike bool          `env:"PRODUCTION_LIKE" envDefault:"false"`
}

// DefaultConfig returns the configuration used when none is loaded from the environment.
func DefaultConfig() Config {
	return Config{
		CookieName:       "visitor_id",
		CookieMaxAge:     365 * 24 * time.Hour,
		SessionTTL:       5 * time.Minute,
		SessionKeyPrefix: "session:",
		CounterKey:       "totalVisitors",
		StoreTimeout:     500 * time.Millisecond,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CookieName == "" {
		c.CookieName = d.CookieName
	}
	if c.CookieMaxAge <= 0 {
		c.CookieMaxAge = d.CookieMaxAge
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = d.SessionTTL
	}
	if c.SessionKeyPrefix == "" {
		c.SessionKeyPrefix = d.SessionKeyPrefix
	}
	if c.CounterKey == "" {
		c.CounterKey = d.CounterKey
	}
	if c.StoreTimeout <= 0 {
		c.StoreTimeout = d.StoreTimeout
	}
	return c
}
