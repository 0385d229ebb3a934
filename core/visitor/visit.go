package visitor

import (
	"time"

	"github.com/tahmidspace/portfolio/pkg/async"
)

// Visit is the outcome of tracking one request.
type Visit struct {
	ID    string
	IsNew bool

	writes []*async.ExecFuture
}

// Wait blocks until the store writes started for this visit finish or timeout
// elapses. Request handling never calls it; it exists for tests and shutdown.
func (v Visit) Wait(timeout time.Duration) error {
	return async.ExecAllWithTimeout(timeout, v.writes...)
}
