package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahmidspace/portfolio/core/response"
)

// testContext is a minimal handler.Context for rendering in isolation.
type testContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (tc *testContext) Deadline() (time.Time, bool)        { return tc.r.Context().Deadline() }
func (tc *testContext) Done() <-chan struct{}              { return tc.r.Context().Done() }
func (tc *testContext) Err() error                         { return tc.r.Context().Err() }
func (tc *testContext) Value(key any) any                  { return tc.r.Context().Value(key) }
func (tc *testContext) SetValue(key, val any)              {}
func (tc *testContext) Request() *http.Request             { return tc.r }
func (tc *testContext) ResponseWriter() http.ResponseWriter { return tc.w }
func (tc *testContext) Param(string) string                { return "" }

func newTestContext() (*testContext, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return &testContext{w: rec, r: httptest.NewRequest(http.MethodGet, "/", nil)}, rec
}

type teapotError struct{}

func (teapotError) Error() string   { return "short and stout" }
func (teapotError) StatusCode() int { return http.StatusServiceUnavailable }

func TestJSON(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext()
	response.Render(ctx, response.JSON(map[string]string{"token": "abc"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"token":"abc"}`, rec.Body.String())
}

func TestJSONWithStatusNoBody(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext()
	response.Render(ctx, response.JSONWithStatus(nil, 0))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStringAndHTML(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext()
	response.Render(ctx, response.StringWithStatus("READY", http.StatusAccepted))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	ctx, rec = newTestContext()
	response.Render(ctx, response.HTML("<h1>hi</h1>"))
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestDecorators(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext()
	resp := response.WithNoStore(response.WithCookie(response.NoContent(), &http.Cookie{Name: "a", Value: "b"}))
	response.Render(ctx, resp)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, "b", rec.Result().Cookies()[0].Value)

	assert.Nil(t, response.WithCookie(nil, &http.Cookie{Name: "a"}))
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("http error keeps code and details", func(t *testing.T) {
		t.Parallel()
		ctx, rec := newTestContext()
		err := response.ErrForbidden.WithDetails(map[string]any{"reason": "origin_mismatch"})
		response.JSONErrorHandler(ctx, err)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "forbidden", body["code"])
		assert.Equal(t, "origin_mismatch", body["details"].(map[string]any)["reason"])
	})

	t.Run("status code interface", func(t *testing.T) {
		t.Parallel()
		ctx, rec := newTestContext()
		response.JSONErrorHandler(ctx, teapotError{})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("plain error is 500", func(t *testing.T) {
		t.Parallel()
		ctx, rec := newTestContext()
		response.JSONErrorHandler(ctx, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "boom")
	})
}

func TestWithDetailsDoesNotMutateBase(t *testing.T) {
	t.Parallel()

	_ = response.ErrForbidden.WithDetails(map[string]any{"reason": "x"})
	assert.Nil(t, response.ErrForbidden.Details)
}

func TestErrorHandlerPlainText(t *testing.T) {
	t.Parallel()

	ctx, rec := newTestContext()
	response.ErrorHandler(ctx, response.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())
}
