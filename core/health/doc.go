// Package health provides liveness and readiness handlers.
//
//	r.Get("/health/live", health.Liveness[*portfolio.Context])
//	r.Get("/health/ready", health.Readiness[*portfolio.Context](log,
//		health.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	))
//
// Readiness runs its checks concurrently under DefaultCheckTimeout and answers
// 503 Service Unavailable if any of them fails.
package health
