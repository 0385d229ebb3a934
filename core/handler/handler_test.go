package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tahmidspace/portfolio/core/handler"
)

type testContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *testContext) Request() *http.Request              { return c.r }
func (c *testContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *testContext) Param(string) string                 { return "" }
func (c *testContext) SetValue(key, val any) {
	c.Context = context.WithValue(c.Context, key, val)
}

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) handler.Middleware[*testContext] {
		return func(next handler.HandlerFunc[*testContext]) handler.HandlerFunc[*testContext] {
			return func(ctx *testContext) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	endpoint := func(ctx *testContext) handler.Response {
		order = append(order, "endpoint")
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
	}

	h := handler.Chain(endpoint, mw("first"), mw("second"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := &testContext{Context: req.Context(), w: rec, r: req}

	err := h(ctx)(rec, req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"first", "second", "endpoint"}, order)
}

func TestChainWithoutMiddleware(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Chain(func(ctx *testContext) handler.Response {
		called = true
		return nil
	})

	assert.Nil(t, h(&testContext{Context: context.Background()}))
	assert.True(t, called)
}
