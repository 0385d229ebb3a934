package csrf

import "errors"

var (
	ErrOriginMismatch = errors.New("csrf: request origin does not match serving origin")
	ErrMissingCookie  = errors.New("csrf: token cookie missing")
	ErrMissingHeader  = errors.New("csrf: token header missing")
	ErrTokenMismatch  = errors.New("csrf: token mismatch")
	ErrGenerateToken  = errors.New("csrf: failed to generate token")
	ErrInvalidOrigin  = errors.New("csrf: invalid configured origin")
)
