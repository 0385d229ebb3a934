// Package handler defines the request-processing contract shared by the router,
// the middleware package and the application: a generic request Context, a
// Response render function, typed handlers and composable middleware.
//
// A handler returns a Response instead of writing directly. The router renders
// the returned function after the middleware chain has unwound, which lets a
// middleware decorate the response (set a cookie, add a header) without
// buffering the body:
//
//	func Visitor[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				resp := next(ctx)
//				return func(w http.ResponseWriter, r *http.Request) error {
//					http.SetCookie(w, &http.Cookie{Name: "visitor_id", Value: "..."})
//					return resp(w, r)
//				}
//			}
//		}
//	}
//
// Context embeds context.Context, so it can be passed straight to store
// clients and loggers:
//
//	func contact(ctx *portfolio.Context) handler.Response {
//		log.InfoContext(ctx, "contact form received")
//		return response.NoContent()
//	}
package handler
