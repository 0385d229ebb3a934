package response

import (
	"net/http"

	"github.com/tahmidspace/portfolio/core/handler"
)

// Error returns a response that hands err to the router's error handler
// instead of writing anything itself.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
