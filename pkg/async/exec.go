package async

import (
	"context"
	"errors"
	"time"
)

// ExecFuture is the pending error of a function started by Exec.
type ExecFuture struct {
	err  error
	done chan struct{}
}

// Exec runs fn(ctx, param) in a new goroutine. If ctx is already done, fn is
// not called and the future resolves to ctx.Err().
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.err = fn(ctx, param)
	}()

	return f
}

// ExecAllWithTimeout waits for all futures under a single shared deadline.
// It returns ErrTimeout if the deadline passes first, otherwise the errors
// of all futures joined together.
func ExecAllWithTimeout(timeout time.Duration, futures ...*ExecFuture) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	var errs []error
	for _, future := range futures {
		select {
		case <-future.done:
			if future.err != nil {
				errs = append(errs, future.err)
			}
		case <-deadline.C:
			return ErrTimeout
		}
	}
	return errors.Join(errs...)
}
