package middleware

import (
	"net/http"
	"time"

	"github.com/tahmidspace/portfolio/core/handler"
)

// RequestRecorder receives one observation per finished request.
type RequestRecorder interface {
	RequestServed(method string, status int, elapsed time.Duration)
}

// MetricsConfig configures the request metrics middleware.
type MetricsConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Recorder receives observations (required)
	Recorder RequestRecorder
}

// Metrics records method, status and latency of every request.
func Metrics[C handler.Context](recorder RequestRecorder) handler.Middleware[C] {
	return MetricsWithConfig[C](MetricsConfig{Recorder: recorder})
}

// MetricsWithConfig records requests once their response has been rendered.
func MetricsWithConfig[C handler.Context](cfg MetricsConfig) handler.Middleware[C] {
	if cfg.Recorder == nil {
		panic("middleware: metrics recorder is required")
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
				err := response(rec, r)

				status := rec.status
				if err != nil && !rec.written {
					status = statusFromError(err)
				}
				cfg.Recorder.RequestServed(r.Method, status, time.Since(start))
				return err
			}
		}
	}
}
