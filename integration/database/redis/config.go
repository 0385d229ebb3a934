package redis

import "time"

// Config holds connection and circuit breaker settings.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"`

	// Circuit breaker around store operations.
	BreakerFailures    uint32        `env:"REDIS_BREAKER_FAILURES" envDefault:"5"`
	BreakerOpenTimeout time.Duration `env:"REDIS_BREAKER_OPEN_TIMEOUT" envDefault:"30s"`
	BreakerInterval    time.Duration `env:"REDIS_BREAKER_INTERVAL" envDefault:"1m"`
}
