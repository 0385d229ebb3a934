package response

import (
	"net/http"

	"github.com/tahmidspace/portfolio/core/handler"
)

// WithHeaders wraps a response with custom HTTP headers.
// Headers are set before the wrapped response is rendered.
func WithHeaders(response handler.Response, headers map[string]string) handler.Response {
	if response == nil || len(headers) == 0 {
		return response
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		return response(w, r)
	}
}

// WithCookie wraps a response with an HTTP cookie.
func WithCookie(response handler.Response, cookie *http.Cookie) handler.Response {
	if response == nil || cookie == nil {
		return response
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		http.SetCookie(w, cookie)
		return response(w, r)
	}
}

// WithNoStore marks a response as uncacheable. Responses that carry
// per-client secrets, such as anti-forgery tokens, must not be cached.
func WithNoStore(response handler.Response) handler.Response {
	return WithHeaders(response, map[string]string{
		"Cache-Control": "no-store",
		"Pragma":        "no-cache",
	})
}
