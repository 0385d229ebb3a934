package binder

import "net/http"

// Binder binds request data to the value v points to.
type Binder func(r *http.Request, v any) error
