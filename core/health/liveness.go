package health

import (
	"github.com/tahmidspace/portfolio/core/handler"
	"github.com/tahmidspace/portfolio/core/response"
)

// Liveness reports that the process is running. It never checks dependencies.
func Liveness[C handler.Context](C) handler.Response {
	return response.WithNoStore(response.String("ALIVE"))
}
