// Package metrics collects Prometheus metrics for visitor tracking, CSRF
// verification, HTTP traffic and the visitor store circuit breaker.
//
// Metrics implements visitor.Observer and is exposed with
//
//	r.Get("/metrics", metrics.Handler[*portfolio.Context](m))
package metrics
