package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/julienschmidt/httprouter"

	"github.com/tahmidspace/portfolio/core/handler"
)

// mux is the private implementation of Router backed by httprouter.
type mux[C handler.Context] struct {
	tree         *httprouter.Router
	table        *routeTable
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	parent       *mux[C]
	inline       bool
}

type routeTable struct {
	mu     sync.RWMutex
	routes []Route
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		tree:         httprouter.New(),
		table:        &routeTable{},
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			if c, ok := any(newContext(w, r, params)).(C); ok {
				return c
			}
			panic(ErrNoContextFactory)
		}
	}

	m.tree.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.errorHandler(m.newContext(w, r, nil), ErrNotFound)
	})
	m.tree.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.errorHandler(m.newContext(w, r, nil), ErrMethodNotAllowed)
	})

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.tree.ServeHTTP(track(w), r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodOptions, pattern, h)
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !validMethods[method] {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[method] {
			continue
		}
		seen[method] = true
		m.handle(method, pattern, h)
	}
}

// Use appends middleware to the router. All middleware must be registered
// before the first route.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if !m.inline && len(m.Routes()) > 0 {
		panic("router: all middlewares must be defined before routes on a mux")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// With creates an inline router that shares the route tree and adds middlewares
// to the routes registered through it.
func (m *mux[C]) With(middlewares ...handler.Middleware[C]) Router[C] {
	return &mux[C]{
		tree:         m.tree,
		table:        m.table,
		middlewares:  middlewares,
		errorHandler: m.errorHandler,
		newContext:   m.newContext,
		logger:       m.logger,
		parent:       m,
		inline:       true,
	}
}

// Group creates an inline router for grouping routes under shared middleware.
func (m *mux[C]) Group(fn func(r Router[C])) Router[C] {
	im := m.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	m.table.mu.RLock()
	defer m.table.mu.RUnlock()
	return append([]Route(nil), m.table.routes...)
}

func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}

	// Outer routers first, so root middleware wraps group middleware.
	var chain []handler.Middleware[C]
	for curr := m; curr != nil; curr = curr.parent {
		chain = append(append([]handler.Middleware[C](nil), curr.middlewares...), chain...)
	}
	h := handler.Chain(fn, chain...)

	m.tree.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		m.dispatch(w, r, ps, h)
	})

	m.table.mu.Lock()
	m.table.routes = append(m.table.routes, Route{Method: method, Pattern: pattern})
	m.table.mu.Unlock()
}

func (m *mux[C]) dispatch(w http.ResponseWriter, r *http.Request, ps httprouter.Params, h handler.HandlerFunc[C]) {
	var params map[string]string
	if len(ps) > 0 {
		params = make(map[string]string, len(ps))
		for _, p := range ps {
			params[p.Key] = p.Value
		}
	}

	ctx := m.newContext(w, r, params)

	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}

			if status, sent := sentStatus(w); sent {
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", status,
				)
				return
			}
			m.errorHandler(ctx, panicErr)
		}
	}()

	resp := h(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	// The handler may have replaced the request (SetValue), so render with
	// the context's current view of it.
	if err := resp(w, ctx.Request()); err != nil {
		m.errorHandler(ctx, err)
	}
}

var validMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
	http.MethodConnect: true,
	http.MethodTrace:   true,
}
