// Package async runs error-only functions in the background and lets callers
// wait for them under a shared deadline.
//
//	incr := async.Exec(ctx, key, store.Incr)
//	refresh := async.Exec(ctx, key, store.Refresh)
//
//	// Do other work...
//
//	if err := async.ExecAllWithTimeout(time.Second, incr, refresh); err != nil {
//		log.Warn("background write failed", "error", err)
//	}
//
// Exec returns immediately with an ExecFuture. A context that is already
// cancelled when the goroutine starts short-circuits with ctx.Err().
// ExecAllWithTimeout returns ErrTimeout when the deadline
// passes; the goroutine itself keeps running until fn returns.
package async
