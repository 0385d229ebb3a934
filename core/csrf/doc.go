// Package csrf guards state-changing requests against cross-site forgery.
//
// A Guard applies two checks in order:
//
//  1. Same origin. The Origin header, or the origin of the Referer when Origin
//     is absent, must equal the serving origin exactly (scheme, host and port).
//     A request carrying neither header is accepted.
//  2. Double submit. The X-CSRF-Token header must equal the csrf-token cookie.
//
// Tokens are 32 random bytes, hex encoded, minted by Issue and set in an
// HttpOnly SameSite=Strict cookie. The page reads the token from the issuing
// endpoint's JSON body and echoes it in the header.
//
//	g, err := csrf.NewFromConfig(csrf.Config{Origin: "https://tahmid.space"})
//
//	if v := g.Verify(r); !v.Accepted {
//		return response.Error(response.ErrForbidden.WithError(v.Reason.Err()))
//	}
package csrf
