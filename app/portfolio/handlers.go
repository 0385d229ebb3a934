package portfolio

import (
	"net/http"

	"github.com/tahmidspace/portfolio/core/handler"
	"github.com/tahmidspace/portfolio/core/logger"
	"github.com/tahmidspace/portfolio/core/response"
)

const homePage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Tahmid</title></head>
<body><main id="app"></main></body>
</html>
`

func (a *App) home(*Context) handler.Response {
	return response.HTML(homePage)
}

// tokenResponse is the body of GET /api/csrf.
type tokenResponse struct {
	Token string `json:"token"`
}

// issueToken mints a fresh CSRF token, sets it as a cookie and returns it in
// the body. Every call overwrites the previous token.
func (a *App) issueToken(ctx *Context) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		token, err := a.guard.Issue(w)
		if err != nil {
			a.logger.ErrorContext(ctx, "csrf token issuance failed",
				logger.Component("csrf"),
				logger.Error(err),
			)
			return response.ErrInternalServerError.WithError(err)
		}
		a.metrics.CSRFTokenIssued()

		return response.WithNoStore(response.JSON(tokenResponse{Token: token}))(w, r)
	}
}
