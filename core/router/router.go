package router

import (
	"net/http"

	"github.com/tahmidspace/portfolio/core/handler"
)

// Router is the main routing interface for handling HTTP requests.
// It supports middleware chaining and inline route groups.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])

	// Method registers h for one or more HTTP methods.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	Use(middlewares ...handler.Middleware[C])
	With(middlewares ...handler.Middleware[C]) Router[C]
	Group(fn func(r Router[C])) Router[C]
}

// Routes provides route introspection for debugging and startup logging.
type Routes interface {
	Routes() []Route
}

// Route describes a single registered route.
type Route struct {
	Method  string
	Pattern string
}

// New creates a new router with the given options.
// Patterns use httprouter syntax: "/posts/:id" for a named segment and
// "/static/*path" for a catch-all.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
