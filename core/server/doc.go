// Package server runs an http.Handler with production timeouts and graceful
// shutdown.
//
// Start binds the listener before serving, so Addr reports the real port when
// the configured address is ":0". Stop drains in-flight requests within the
// shutdown timeout and then runs the registered shutdown hooks, which is where
// the store connection is closed.
//
//	srv, err := server.NewFromConfig(cfg,
//		server.WithLogger(log),
//		server.WithShutdownHook(func(context.Context) error { return rdb.Close() }),
//	)
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, app))
//	return g.Wait()
package server
