package portfolio

import (
	"github.com/tahmidspace/portfolio/core/cookie"
	"github.com/tahmidspace/portfolio/core/csrf"
	"github.com/tahmidspace/portfolio/core/metrics"
	"github.com/tahmidspace/portfolio/core/server"
	"github.com/tahmidspace/portfolio/core/visitor"
	"github.com/tahmidspace/portfolio/integration/database/redis"
	"github.com/tahmidspace/portfolio/integration/email/postmark"
)

// Config is the full service configuration, loaded from the environment.
type Config struct {
	Server   server.Config
	Cookie   cookie.Config
	Visitor  visitor.Config
	CSRF     csrf.Config
	Redis    redis.Config
	Postmark postmark.Config
	Metrics  metrics.Config

	AppName  string `env:"APP_NAME" envDefault:"portfolio"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ContactRecipient receives contact form submissions.
	ContactRecipient string `env:"CONTACT_RECIPIENT" envDefault:"hello@tahmid.space"`
	// EmailDir is where the development sender writes rendered emails; empty logs only.
	EmailDir string `env:"EMAIL_DIR"`
	// MaxContactBody caps the contact request body in bytes.
	MaxContactBody int64 `env:"CONTACT_MAX_BODY" envDefault:"16384"`
}

// IsDevelopment reports whether the service runs in the development environment.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProductionLike reports whether cookies must be Secure and the serving
// origin is https. Any environment other than development is production-like;
// PRODUCTION_LIKE forces it in development too.
func (c Config) IsProductionLike() bool {
	return !c.IsDevelopment() || c.Visitor.IsProductionLike || c.CSRF.IsProductionLike
}
