package visitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tahmidspace/portfolio/core/cookie"
	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/pkg/async"
)

// sessionMarker is the value written under every session key.
const sessionMarker = "1"

// Observer receives tracking events, typically to update metrics.
type Observer interface {
	VisitorTracked(isNew bool)
	StoreWriteFailed(op string)
}

type nopObserver struct{}

func (nopObserver) VisitorTracked(bool)     {}
func (nopObserver) StoreWriteFailed(string) {}

// Tracker assigns anonymous visitor ids and records visits in a Store.
type Tracker struct {
	store     Store
	cfg       Config
	cookies   *cookie.Manager
	cookieCfg cookie.Config
	logger    *slog.Logger
	observer  Observer
	newID     func() (string, error)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used to report failed store writes.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithObserver sets the observer notified about visits and failed writes.
func WithObserver(o Observer) Option {
	return func(t *Tracker) {
		if o != nil {
			t.observer = o
		}
	}
}

// WithIDGenerator replaces NewID.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(t *Tracker) {
		if fn != nil {
			t.newID = fn
		}
	}
}

// WithCookieConfig sets the shared cookie settings (domain, path, secure, size)
// applied to the identity cookie.
func WithCookieConfig(cfg cookie.Config) Option {
	return func(t *Tracker) {
		t.cookieCfg = cfg
	}
}

// New creates a tracker with DefaultConfig.
func New(store Store, opts ...Option) (*Tracker, error) {
	return NewFromConfig(DefaultConfig(), store, opts...)
}

// NewFromConfig creates a tracker. Zero config fields take their defaults.
func NewFromConfig(cfg Config, store Store, opts ...Option) (*Tracker, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	cfg = cfg.withDefaults()

	t := &Tracker{
		store:    store,
		cfg:      cfg,
		logger:   logger.NewNope(),
		observer: nopObserver{},
		newID:    NewID,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.cookies = cookie.NewFromConfig(t.cookieCfg,
		cookie.WithSecure(t.cookieCfg.Secure || cfg.IsProductionLike),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(int(cfg.CookieMaxAge.Seconds())),
	)

	return t, nil
}

// Config returns the effective configuration.
func (t *Tracker) Config() Config {
	return t.cfg
}

// Track resolves the visitor id for r and starts the store writes for it.
//
// A request without a well-formed id cookie is a new visitor: a fresh id is
// minted and the visitor counter is incremented once. Every request refreshes
// the visitor's session marker. Writes run detached from ctx cancellation,
// bounded by Config.StoreTimeout; failures are logged and never returned.
func (t *Tracker) Track(ctx context.Context, r *http.Request) Visit {
	id, err := t.cookies.Get(r, t.cfg.CookieName)
	isNew := err != nil || !ValidID(id)

	if isNew {
		id, err = t.newID()
		if err != nil {
			t.logger.ErrorContext(ctx, "mint visitor id", logger.Component("visitor"), logger.Error(err))
			return Visit{}
		}
	}

	t.observer.VisitorTracked(isNew)

	detached := context.WithoutCancel(ctx)
	visit := Visit{ID: id, IsNew: isNew}

	if isNew {
		visit.writes = append(visit.writes, async.Exec(detached, t.cfg.CounterKey, t.incrementCounter))
	}
	visit.writes = append(visit.writes, async.Exec(detached, id, t.refreshSession))

	return visit
}

// Cookie returns the identity cookie for a new visit, or nil for a returning one.
// The cookie is Secure when the deployment is production-like or r arrived over TLS.
func (t *Tracker) Cookie(v Visit, r *http.Request) (*http.Cookie, error) {
	if !v.IsNew || v.ID == "" {
		return nil, nil
	}

	var opts []cookie.Option
	if r != nil && r.TLS != nil {
		opts = append(opts, cookie.WithSecure(true))
	}

	return t.cookies.Build(t.cfg.CookieName, v.ID, opts...)
}

// IsActive reports whether the session marker for id is present.
func (t *Tracker) IsActive(ctx context.Context, id string) (bool, error) {
	if !ValidID(id) {
		return false, ErrInvalidID
	}

	_, err := t.store.Get(ctx, t.sessionKey(id))
	switch {
	case errors.Is(err, ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// TotalVisitors reads the visitor counter. A missing counter reads as zero.
func (t *Tracker) TotalVisitors(ctx context.Context) (int64, error) {
	v, err := t.store.Get(ctx, t.cfg.CounterKey)
	switch {
	case errors.Is(err, ErrNotFound):
		return 0, nil
	case err != nil:
		return 0, err
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, v)
	}
	return n, nil
}

func (t *Tracker) sessionKey(id string) string {
	return t.cfg.SessionKeyPrefix + id
}

func (t *Tracker) incrementCounter(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.StoreTimeout)
	defer cancel()

	if _, err := t.store.Incr(ctx, key); err != nil {
		t.writeFailed(ctx, "incr", key, err)
		return errors.Join(ErrCounterWrite, err)
	}
	return nil
}

func (t *Tracker) refreshSession(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.StoreTimeout)
	defer cancel()

	key := t.sessionKey(id)
	if err := t.store.SetEx(ctx, key, sessionMarker, t.cfg.SessionTTL); err != nil {
		t.writeFailed(ctx, "setex", key, err)
		return errors.Join(ErrSessionWrite, err)
	}
	return nil
}

func (t *Tracker) writeFailed(ctx context.Context, op, key string, err error) {
	t.observer.StoreWriteFailed(op)
	t.logger.WarnContext(ctx, "visitor store write failed",
		logger.Component("visitor"),
		logger.Action(op),
		logger.Key("key", key),
		logger.Error(err),
	)
}
