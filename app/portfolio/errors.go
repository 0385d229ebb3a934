package portfolio

import "errors"

var (
	ErrNilDependency   = errors.New("portfolio: dependency cannot be nil")
	ErrInvalidContact  = errors.New("contact request is invalid")
	ErrContactDelivery = errors.New("portfolio: contact delivery failed")
)
