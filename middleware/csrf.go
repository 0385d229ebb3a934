package middleware

import (
	"log/slog"
	"net/http"

	"github.com/tahmidspace/portfolio/core/csrf"
	"github.com/tahmidspace/portfolio/core/handler"
	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/core/response"
)

// CSRFConfig configures the CSRF guard middleware.
type CSRFConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Guard performs the checks (required)
	Guard *csrf.Guard

	// Logger reports rejected requests (default: discard)
	Logger *slog.Logger

	// OnVerdict is called with every verdict, e.g. to record metrics
	OnVerdict func(csrf.Verdict)
}

var safeMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// CSRF guards state-changing requests with guard.
func CSRF[C handler.Context](guard *csrf.Guard) handler.Middleware[C] {
	return CSRFWithConfig[C](CSRFConfig{Guard: guard})
}

// CSRFWithConfig rejects state-changing requests that fail origin or token
// verification with 403 Forbidden before the handler runs. Safe methods and
// exempt paths pass through unchecked.
func CSRFWithConfig[C handler.Context](cfg CSRFConfig) handler.Middleware[C] {
	if cfg.Guard == nil {
		panic("middleware: csrf guard is required")
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
			if safeMethods[req.Method] || cfg.Guard.Exempt(req) {
				return next(ctx)
			}

			verdict := cfg.Guard.Verify(req)
			if cfg.OnVerdict != nil {
				cfg.OnVerdict(verdict)
			}

			if !verdict.Accepted {
				cfg.Logger.WarnContext(ctx, "csrf check rejected request",
					logger.Component("csrf"),
					logger.Method(req.Method),
					logger.Path(req.URL.Path),
					logger.Reason(verdict.Reason.String()),
					logger.VisitorID(GetVisitorID(ctx)),
				)
				return response.Error(response.ErrForbidden.WithDetails(map[string]any{
					"reason": verdict.Reason.String(),
				}))
			}

			return next(ctx)
		}
	}
}
