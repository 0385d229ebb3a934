// Package cookie builds and reads HTTP cookies with shared, secure defaults.
//
// A Manager carries default attributes (Path=/, HttpOnly, SameSite=Lax) that
// individual calls override with options:
//
//	m := cookie.New(cookie.WithSecure(true))
//
//	c, err := m.Build("visitor_id", id,
//		cookie.WithMaxAge(365*24*60*60),
//	)
//
//	value, err := m.Get(r, "visitor_id")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// first visit
//	}
//
// Build validates the name and value and rejects cookies whose serialized
// form exceeds the manager's size limit (MaxCookieSize by default) with
// ErrCookieTooLarge. Set is Build followed by http.SetCookie.
//
// Values are stored as-is. Nothing in this package signs or encrypts them.
package cookie
