// Package response builds handler.Response values: plain text, HTML, JSON,
// empty status responses and error pass-through, plus decorators that attach
// headers or cookies to an existing response.
//
// Errors returned from a handler via Error are rendered by the router's error
// handler. JSONErrorHandler writes HTTPError values as
//
//	{"code":"forbidden","message":"Forbidden","details":{"reason":"origin_mismatch"}}
//
// and maps any other error to its StatusCode() when it implements one, or to
// 500 otherwise.
package response
