// Package router provides a generic HTTP router on top of
// github.com/julienschmidt/httprouter with typed handlers, middleware chains,
// inline groups and pluggable error handling.
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
//	r.Use(middleware.RequestID[*router.Context]())
//	r.Get("/api/csrf", issueToken)
//	r.With(middleware.CSRF[*router.Context](guard)).Post("/api/contact", contact)
//
// Handlers return a handler.Response that the router renders once the
// middleware chain has returned. Panics in handlers are recovered and passed
// to the error handler as a PanicError unless the response was already
// written, in which case they are logged.
//
// Custom context types need a factory:
//
//	router.New[*AppContext](router.WithContextFactory(newAppContext))
package router
