package visitor

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for development and tests.
// Expired keys are dropped lazily on access.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

type memoryItem struct {
	value     string
	expiresAt time.Time
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock sets the time source used for expiry.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]memoryItem),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value under key or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.lookup(key)
	if !ok {
		return "", ErrNotFound
	}
	return item.value, nil
}

// SetEx stores value under key for ttl. A non-positive ttl stores without expiry.
func (s *MemoryStore) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}
	s.items[key] = item
	return nil
}

// Incr atomically increments the integer under key, starting from zero.
// An existing expiry is kept.
func (s *MemoryStore) Incr(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.lookup(key)
	var n int64
	if ok {
		var err error
		n, err = strconv.ParseInt(item.value, 10, 64)
		if err != nil {
			return 0, ErrNotInteger
		}
	}

	n++
	item.value = strconv.FormatInt(n, 10)
	s.items[key] = item
	return n, nil
}

// Len returns the number of live keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for _, item := range s.items {
		if !item.expired(now) {
			n++
		}
	}
	return n
}

// lookup must be called with mu held.
func (s *MemoryStore) lookup(key string) (memoryItem, bool) {
	item, ok := s.items[key]
	if !ok {
		return memoryItem{}, false
	}
	if item.expired(s.now()) {
		delete(s.items, key)
		return memoryItem{}, false
	}
	return item, true
}
