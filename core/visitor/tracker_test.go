package visitor_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahmidspace/portfolio/core/cookie"
	"github.com/tahmidspace/portfolio/core/visitor"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type failingStore struct{ err error }

func (s failingStore) Get(context.Context, string) (string, error) { return "", s.err }
func (s failingStore) SetEx(context.Context, string, string, time.Duration) error {
	return s.err
}
func (s failingStore) Incr(context.Context, string) (int64, error) { return 0, s.err }

// hangingStore blocks every call until its context is done.
type hangingStore struct{}

func (hangingStore) Get(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (hangingStore) SetEx(ctx context.Context, _, _ string, _ time.Duration) error {
	<-ctx.Done()
	return ctx.Err()
}

func (hangingStore) Incr(ctx context.Context, _ string) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

type recordingObserver struct {
	mu       sync.Mutex
	tracked  []bool
	failures []string
}

func (o *recordingObserver) VisitorTracked(isNew bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tracked = append(o.tracked, isNew)
}

func (o *recordingObserver) StoreWriteFailed(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, op)
}

func newTracker(t *testing.T, store visitor.Store, opts ...visitor.Option) *visitor.Tracker {
	t.Helper()
	tr, err := visitor.New(store, opts...)
	require.NoError(t, err)
	return tr
}

func TestTrack_NewVisitor(t *testing.T) {
	t.Parallel()

	store := visitor.NewMemoryStore()
	tr := newTracker(t, store)
	ctx := context.Background()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	visit := tr.Track(ctx, r)
	require.NoError(t, visit.Wait(time.Second))

	assert.True(t, visit.IsNew)
	assert.True(t, visitor.ValidID(visit.ID))

	c, err := tr.Cookie(visit, r)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "visitor_id", c.Name)
	assert.Equal(t, visit.ID, c.Value)
	assert.Equal(t, 365*24*60*60, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)

	total, err := tr.TotalVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	active, err := tr.IsActive(ctx, visit.ID)
	require.NoError(t, err)
	assert.True(t, active)

	marker, err := store.Get(ctx, "session:"+visit.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", marker)
}

func TestTrack_ReturningVisitor(t *testing.T) {
	t.Parallel()

	clk := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := visitor.NewMemoryStore(visitor.WithClock(clk.Now))
	tr := newTracker(t, store)
	ctx := context.Background()

	first := tr.Track(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, first.Wait(time.Second))

	clk.Advance(4 * time.Minute)

	r := httptest.NewRequest(http.MethodGet, "/about", nil)
	r.AddCookie(&http.Cookie{Name: "visitor_id", Value: first.ID})
	second := tr.Track(ctx, r)
	require.NoError(t, second.Wait(time.Second))

	assert.False(t, second.IsNew)
	assert.Equal(t, first.ID, second.ID)

	c, err := tr.Cookie(second, r)
	require.NoError(t, err)
	assert.Nil(t, c)

	total, err := tr.TotalVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Four minutes after the refresh the first marker would have expired.
	clk.Advance(4 * time.Minute)
	active, err := tr.IsActive(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestTrack_SessionExpiry(t *testing.T) {
	t.Parallel()

	clk := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := visitor.NewMemoryStore(visitor.WithClock(clk.Now))
	tr := newTracker(t, store)
	ctx := context.Background()

	visit := tr.Track(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, visit.Wait(time.Second))

	clk.Advance(100 * time.Second)
	active, err := tr.IsActive(ctx, visit.ID)
	require.NoError(t, err)
	assert.True(t, active)

	clk.Advance(201 * time.Second)
	active, err = tr.IsActive(ctx, visit.ID)
	require.NoError(t, err)
	assert.False(t, active)

	total, err := tr.TotalVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestTrack_MalformedCookie(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, visitor.NewMemoryStore())
	ctx := context.Background()

	for _, value := range []string{"not-a-uuid", "00000000-0000-0000-0000-000000000000", "x"} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "visitor_id", Value: value})

		visit := tr.Track(ctx, r)
		require.NoError(t, visit.Wait(time.Second))

		assert.True(t, visit.IsNew, value)
		assert.NotEqual(t, value, visit.ID)
	}

	total, err := tr.TotalVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestTrack_StoreFailureDegrades(t *testing.T) {
	t.Parallel()

	down := errors.New("connection refused")
	obs := &recordingObserver{}
	tr := newTracker(t, failingStore{err: down}, visitor.WithObserver(obs))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	visit := tr.Track(context.Background(), r)

	assert.True(t, visit.IsNew)
	assert.NotEmpty(t, visit.ID)

	c, err := tr.Cookie(visit, r)
	require.NoError(t, err)
	assert.NotNil(t, c)

	err = visit.Wait(time.Second)
	assert.ErrorIs(t, err, visitor.ErrCounterWrite)
	assert.ErrorIs(t, err, visitor.ErrSessionWrite)
	assert.ErrorIs(t, err, down)

	obs.mu.Lock()
	defer obs.mu.Unlock()
	assert.Equal(t, []bool{true}, obs.tracked)
	assert.ElementsMatch(t, []string{"incr", "setex"}, obs.failures)
}

func TestTrack_HangingStoreBoundedByTimeout(t *testing.T) {
	t.Parallel()

	cfg := visitor.DefaultConfig()
	cfg.StoreTimeout = 100 * time.Millisecond
	tr, err := visitor.NewFromConfig(cfg, hangingStore{})
	require.NoError(t, err)

	start := time.Now()
	visit := tr.Track(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, visit.IsNew)

	err = visit.Wait(2 * time.Second)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, visitor.ErrCounterWrite)
	assert.ErrorIs(t, err, visitor.ErrSessionWrite)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, elapsed, cfg.StoreTimeout)
	assert.Less(t, elapsed, time.Second)
}

func TestTrack_CancelledRequestStillWrites(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, visitor.NewMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	visit := tr.Track(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	cancel()

	require.NoError(t, visit.Wait(time.Second))

	total, err := tr.TotalVisitors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestTrack_IDGeneratorFailure(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, visitor.NewMemoryStore(), visitor.WithIDGenerator(func() (string, error) {
		return "", visitor.ErrMintID
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	visit := tr.Track(context.Background(), r)

	assert.Empty(t, visit.ID)
	assert.NoError(t, visit.Wait(time.Second))

	c, err := tr.Cookie(visit, r)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCookie_SharedCookieConfig(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, visitor.NewMemoryStore(), visitor.WithCookieConfig(cookie.Config{
		Domain: "tahmid.space",
		Secure: true,
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	visit := tr.Track(context.Background(), r)
	require.NoError(t, visit.Wait(time.Second))

	c, err := tr.Cookie(visit, r)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "tahmid.space", c.Domain)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
}

func TestCookie_Secure(t *testing.T) {
	t.Parallel()

	cfg := visitor.DefaultConfig()
	cfg.IsProductionLike = true
	tr, err := visitor.NewFromConfig(cfg, visitor.NewMemoryStore())
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	visit := tr.Track(context.Background(), r)
	c, err := tr.Cookie(visit, r)
	require.NoError(t, err)
	assert.True(t, c.Secure)

	tls := httptest.NewRequest(http.MethodGet, "https://tahmid.space/", nil)
	dev := newTracker(t, visitor.NewMemoryStore())
	c, err = dev.Cookie(dev.Track(context.Background(), tls), tls)
	require.NoError(t, err)
	assert.True(t, c.Secure)
}

func TestNew_NilStore(t *testing.T) {
	t.Parallel()

	_, err := visitor.New(nil)
	assert.ErrorIs(t, err, visitor.ErrNilStore)
}

func TestIsActive_InvalidID(t *testing.T) {
	t.Parallel()

	tr := newTracker(t, visitor.NewMemoryStore())
	_, err := tr.IsActive(context.Background(), "nope")
	assert.ErrorIs(t, err, visitor.ErrInvalidID)
}
