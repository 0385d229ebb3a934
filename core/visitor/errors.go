package visitor

import "errors"

var (
	ErrNotFound     = errors.New("visitor: key not found")
	ErrNotInteger   = errors.New("visitor: value is not an integer")
	ErrNilStore     = errors.New("visitor: store is nil")
	ErrInvalidID    = errors.New("visitor: invalid visitor id")
	ErrMintID       = errors.New("visitor: failed to mint visitor id")
	ErrCounterWrite = errors.New("visitor: failed to increment visitor counter")
	ErrSessionWrite = errors.New("visitor: failed to refresh session marker")
)
