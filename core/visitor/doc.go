// Package visitor assigns anonymous visitor ids and keeps a live-session
// registry in a key-value store.
//
// Every request goes through Tracker.Track. A request without a well-formed
// visitor cookie gets a freshly minted id and increments the global counter
// (Config.CounterKey) exactly once. Every request rewrites the session marker
// "session:<id>" with Config.SessionTTL, so a visitor stays active for as long
// as they keep making requests within that window.
//
//	tracker, err := visitor.NewFromConfig(cfg, store,
//		visitor.WithLogger(log),
//		visitor.WithObserver(metrics),
//	)
//
//	visit := tracker.Track(ctx, r)
//	c, err := tracker.Cookie(visit, r) // nil for returning visitors
//
// Store writes run in the background on a context detached from the request
// and bounded by Config.StoreTimeout. They are never retried and their errors
// never reach the caller; Visit.Wait lets tests observe them.
//
// MemoryStore is an in-process Store with lazy expiry and an injectable clock.
// The Redis-backed Store lives in integration/database/redis.
package visitor
