// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/tahmidspace/portfolio/core/config"
//
//	type TrackerConfig struct {
//		CookieName string        `env:"VISITOR_COOKIE_NAME" envDefault:"visitor_id"`
//		SessionTTL time.Duration `env:"VISITOR_SESSION_TTL" envDefault:"5m"`
//		Production bool          `env:"APP_PRODUCTION" envDefault:"false"`
//	}
//
//	func main() {
//		var tc TrackerConfig
//
//		// Load with error handling
//		if err := config.Load(&tc); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&tc)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 TrackerConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 TrackerConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	type RedisConfig struct {
//		URL string `env:"REDIS_URL,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&ServerConfig{})
//	config.MustLoad(&RedisConfig{})
package config
