package visitor

import (
	"context"
	"time"
)

// Store is the subset of a key-value service the tracker needs.
// Get returns ErrNotFound for missing or expired keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
}
