package csrf

import (
	"net/http"
	"net/url"
	"strings"
)

// parseOrigin reduces s to "scheme://host[:port]" in lower case.
// When strict is set, s must be a bare origin as sent in an Origin header:
// no path (not even "/"), query or fragment. The opaque origin "null" never parses.
func parseOrigin(s string, strict bool) (string, bool) {
	if s == "" || s == "null" {
		return "", false
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" || u.Opaque != "" || u.User != nil {
		return "", false
	}
	if strict && (u.Path != "" || u.RawQuery != "" || u.Fragment != "") {
		return "", false
	}

	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), true
}

// servingOrigin returns the origin the request was served from.
func (g *Guard) servingOrigin(r *http.Request) string {
	if g.origin != "" {
		return g.origin
	}

	scheme := "http"
	if r.TLS != nil || g.cfg.IsProductionLike {
		scheme = "https"
	}
	return scheme + "://" + strings.ToLower(r.Host)
}

// sameOrigin checks the Origin header, falling back to the origin of the
// Referer. A request carrying neither is accepted.
func (g *Guard) sameOrigin(r *http.Request) bool {
	serving := g.servingOrigin(r)

	if header := r.Header.Get("Origin"); header != "" {
		origin, ok := parseOrigin(header, true)
		return ok && origin == serving
	}

	if referer := r.Header.Get("Referer"); referer != "" {
		origin, ok := parseOrigin(referer, false)
		return ok && origin == serving
	}

	return true
}
