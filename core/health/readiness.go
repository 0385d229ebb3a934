package health

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tahmidspace/portfolio/core/handler"
	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/core/response"
)

// DefaultCheckTimeout bounds all readiness checks of a single probe.
const DefaultCheckTimeout = 2 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Readiness runs all checks concurrently and returns "READY" when every one
// succeeds, 503 otherwise.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = logger.NewNope()
	}

	return func(ctx C) handler.Response {
		checkCtx, cancel := context.WithTimeout(ctx, DefaultCheckTimeout)
		defer cancel()

		g, gctx := errgroup.WithContext(checkCtx)
		for _, c := range checks {
			g.Go(func() error {
				if err := c.Fn(gctx); err != nil {
					log.ErrorContext(ctx, "readiness check failed",
						logger.Component("health"),
						slog.String("check", c.Name),
						logger.Error(err),
					)
					return err
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return response.Error(response.ErrServiceUnavailable)
		}

		return response.WithNoStore(response.String("READY"))
	}
}
