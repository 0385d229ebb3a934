// Package redis connects to Redis and exposes it as a visitor.Store.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := redis.NewStore(client, cfg, redis.WithStoreLogger(log))
//	health.Check{Name: "redis", Fn: redis.Healthcheck(client)}
//
// Connect accepts redis:// and rediss:// URLs and pings with retries before
// returning. Store maps the tracker's operations to GET, SET EX and INCR; a
// missing key is reported as visitor.ErrNotFound.
//
// Store calls run through a sony/gobreaker circuit breaker. After
// Config.BreakerFailures consecutive failures the breaker opens and calls fail
// immediately with ErrStoreUnavailable for Config.BreakerOpenTimeout. Missing
// keys and cancelled contexts do not count as failures.
package redis
