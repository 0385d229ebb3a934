// Package portfolio assembles the portfolio HTTP service.
//
// Every application route passes the visitor tracker, which assigns the
// anonymous visitor_id cookie and records the visit in the key-value store.
// POST /api/contact is additionally guarded by the origin and CSRF token
// check; clients obtain a token from GET /api/csrf and echo it in the
// X-CSRF-Token header. Health probes and /metrics bypass both.
package portfolio
