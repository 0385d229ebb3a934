package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tahmidspace/portfolio/core/handler"
	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/core/visitor"
)

type visitorContextKey struct{}

// VisitorConfig configures the visitor tracking middleware.
type VisitorConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Tracker records visits (required)
	Tracker *visitor.Tracker

	// Logger reports cookie build failures (default: discard)
	Logger *slog.Logger
}

// Visitor tracks every request with tracker.
func Visitor[C handler.Context](tracker *visitor.Tracker) handler.Middleware[C] {
	return VisitorWithConfig[C](VisitorConfig{Tracker: tracker})
}

// VisitorWithConfig resolves the visitor for each request, stores the visit
// in the context and sets the identity cookie on the response for new
// visitors. Tracking never fails the request.
func VisitorWithConfig[C handler.Context](cfg VisitorConfig) handler.Middleware[C] {
	if cfg.Tracker == nil {
		panic("middleware: visitor tracker is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNope()
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			visit := cfg.Tracker.Track(ctx, req)
			if visit.ID != "" {
				ctx.SetValue(visitorContextKey{}, visit)
			}

			c, err := cfg.Tracker.Cookie(visit, req)
			if err != nil {
				cfg.Logger.WarnContext(ctx, "build visitor cookie",
					logger.Component("visitor"),
					logger.VisitorID(visit.ID),
					logger.Error(err),
				)
			}

			response := next(ctx)
			if c == nil {
				return response
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				http.SetCookie(w, c)
				return response(w, r)
			}
		}
	}
}

// GetVisit returns the visit recorded for the request.
func GetVisit(ctx context.Context) (visitor.Visit, bool) {
	v, ok := ctx.Value(visitorContextKey{}).(visitor.Visit)
	return v, ok
}

// GetVisitorID returns the visitor id recorded for the request, or "".
func GetVisitorID(ctx context.Context) string {
	v, _ := GetVisit(ctx)
	return v.ID
}
