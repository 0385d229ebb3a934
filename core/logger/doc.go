// Package logger builds log/slog loggers and provides attribute helpers with
// consistent key names across the service.
//
//	log := logger.New(
//		logger.WithProduction("portfolio"),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.WarnContext(ctx, "visitor store write failed",
//		logger.Component("visitor"),
//		logger.Action("incr"),
//		logger.Error(err),
//	)
//
// Helpers such as Error, VisitorID and Reason return an empty slog.Attr for
// zero inputs, so they can be passed without nil checks.
//
// Components that accept a *slog.Logger default to NewNope when none is given.
package logger
