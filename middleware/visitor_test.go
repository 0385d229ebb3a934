package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahmidspace/portfolio/core/handler"
	"github.com/tahmidspace/portfolio/core/response"
	"github.com/tahmidspace/portfolio/core/router"
	"github.com/tahmidspace/portfolio/core/visitor"
	"github.com/tahmidspace/portfolio/middleware"
)

func newVisitorRouter(t *testing.T, store visitor.Store) (router.Router[*router.Context], *visitor.Tracker, chan visitor.Visit) {
	t.Helper()

	tracker, err := visitor.New(store)
	require.NoError(t, err)

	visits := make(chan visitor.Visit, 8)
	r := router.New[*router.Context]()
	r.Use(middleware.Visitor[*router.Context](tracker))
	r.Get("/", func(ctx *router.Context) handler.Response {
		v, ok := middleware.GetVisit(ctx)
		if ok {
			visits <- v
		}
		return response.String("home")
	})

	return r, tracker, visits
}

func TestVisitorMiddleware_NewVisitor(t *testing.T) {
	t.Parallel()

	r, tracker, visits := newVisitorRouter(t, visitor.NewMemoryStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	visit := <-visits
	require.NoError(t, visit.Wait(time.Second))
	assert.True(t, visit.IsNew)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "visitor_id", cookies[0].Name)
	assert.Equal(t, visit.ID, cookies[0].Value)

	total, err := tracker.TotalVisitors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestVisitorMiddleware_ReplayKeepsCounter(t *testing.T) {
	t.Parallel()

	r, tracker, visits := newVisitorRouter(t, visitor.NewMemoryStore())

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	firstVisit := <-visits
	require.NoError(t, firstVisit.Wait(time.Second))

	idCookie := first.Result().Cookies()[0]

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(idCookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		v := <-visits
		require.NoError(t, v.Wait(time.Second))
		assert.False(t, v.IsNew)
		assert.Equal(t, firstVisit.ID, v.ID)
		assert.Empty(t, w.Result().Cookies())
	}

	total, err := tracker.TotalVisitors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	active, err := tracker.IsActive(context.Background(), firstVisit.ID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestVisitorMiddleware_StoreDown(t *testing.T) {
	t.Parallel()

	r, _, visits := newVisitorRouter(t, downStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "home", w.Body.String())
	assert.Len(t, w.Result().Cookies(), 1)

	visit := <-visits
	assert.Error(t, visit.Wait(time.Second))
}

func TestVisitorMiddleware_Skip(t *testing.T) {
	t.Parallel()

	tracker, err := visitor.New(visitor.NewMemoryStore())
	require.NoError(t, err)

	r := router.New[*router.Context]()
	r.Use(middleware.VisitorWithConfig[*router.Context](middleware.VisitorConfig{
		Tracker: tracker,
		Skip:    func(ctx handler.Context) bool { return ctx.Request().URL.Path == "/health/live" },
	}))
	r.Get("/health/live", func(ctx *router.Context) handler.Response {
		assert.Empty(t, middleware.GetVisitorID(ctx))
		return response.String("ALIVE")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Empty(t, w.Result().Cookies())
	total, err := tracker.TotalVisitors(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestVisitorMiddleware_RequiresTracker(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { middleware.Visitor[*router.Context](nil) })
}

type downStore struct{}

func (downStore) Get(context.Context, string) (string, error) { return "", assert.AnError }
func (downStore) SetEx(context.Context, string, string, time.Duration) error {
	return assert.AnError
}
func (downStore) Incr(context.Context, string) (int64, error) { return 0, assert.AnError }
