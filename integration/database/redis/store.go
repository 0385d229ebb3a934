package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/core/visitor"
)

// Store implements visitor.Store on top of a Redis client. All calls pass
// through a circuit breaker so that an unreachable server fails fast.
type Store struct {
	client  redis.UniversalClient
	breaker *gobreaker.CircuitBreaker[string]
	logger  *slog.Logger
}

var _ visitor.Store = (*Store)(nil)

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	logger        *slog.Logger
	onStateChange func(from, to gobreaker.State)
}

// WithStoreLogger sets the logger used for breaker state changes.
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(o *storeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStateChangeHook is called after every breaker state transition.
func WithStateChangeHook(fn func(from, to gobreaker.State)) StoreOption {
	return func(o *storeOptions) {
		o.onStateChange = fn
	}
}

// NewStore wraps client. Breaker thresholds come from cfg; zero values fall
// back to 5 consecutive failures, a 30s open period and a 1m counting window.
func NewStore(client redis.UniversalClient, cfg Config, opts ...StoreOption) *Store {
	o := &storeOptions{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(o)
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	openTimeout := cfg.BreakerOpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}
	interval := cfg.BreakerInterval
	if interval <= 0 {
		interval = time.Minute
	}

	s := &Store{client: client, logger: o.logger}

	s.breaker = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "redis-store",
		MaxRequests: 1,
		Interval:    interval,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, visitor.ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Warn("circuit breaker state changed",
				logger.Component(name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if o.onStateChange != nil {
				o.onStateChange(from, to)
			}
		},
	})

	return s
}

// Get returns the value under key, or visitor.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return s.execute(func() (string, error) {
		v, err := s.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return "", visitor.ErrNotFound
		}
		return v, err
	})
}

// SetEx writes value with SET key value EX ttl.
func (s *Store) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := s.execute(func() (string, error) {
		return "", s.client.Set(ctx, key, value, ttl).Err()
	})
	return err
}

// Incr runs INCR on key.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	var n int64
	_, err := s.execute(func() (string, error) {
		var err error
		n, err = s.client.Incr(ctx, key).Result()
		return "", err
	})
	return n, err
}

// State reports the breaker state.
func (s *Store) State() gobreaker.State {
	return s.breaker.State()
}

func (s *Store) execute(fn func() (string, error)) (string, error) {
	v, err := s.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", errors.Join(ErrStoreUnavailable, err)
	}
	return v, err
}
