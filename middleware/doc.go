// Package middleware provides the HTTP middleware of the portfolio edge layer.
//
// Every constructor comes in two forms, a default one and a WithConfig variant
// whose config struct carries a Skip func:
//
//	r.Use(
//		middleware.RequestID[*portfolio.Context](),
//		middleware.LoggingWithLogger[*portfolio.Context](log),
//		middleware.Metrics[*portfolio.Context](m),
//		middleware.SecurityHeaders[*portfolio.Context](),
//		middleware.Visitor[*portfolio.Context](tracker),
//		middleware.CSRF[*portfolio.Context](guard),
//	)
//
// Middlewares that change the response (headers, cookies) wrap the
// handler.Response returned by the next handler, so their changes also apply
// when the response ends up rendered by the router's error handler.
//
// Visitor never fails a request. CSRF short-circuits state-changing requests
// that fail verification with 403 and a "reason" detail.
package middleware
