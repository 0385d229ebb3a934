package cookie

import (
	"errors"
	"fmt"
)

var (
	ErrCookieNotFound = errors.New("cookie not found in request")
	ErrInvalidName    = errors.New("invalid cookie name")
	ErrInvalidFormat  = errors.New("invalid cookie format")
)

// ErrCookieTooLarge indicates the cookie exceeds the maximum allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
