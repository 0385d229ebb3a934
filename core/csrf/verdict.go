package csrf

// Reason explains why a request was rejected.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonOriginMismatch Reason = "origin_mismatch"
	ReasonMissingCookie  Reason = "missing_cookie"
	ReasonMissingHeader  Reason = "missing_header"
	ReasonTokenMismatch  Reason = "token_mismatch"
)

func (r Reason) String() string {
	if r == ReasonNone {
		return "none"
	}
	return string(r)
}

// Err returns the sentinel error for r, or nil for ReasonNone.
func (r Reason) Err() error {
	switch r {
	case ReasonOriginMismatch:
		return ErrOriginMismatch
	case ReasonMissingCookie:
		return ErrMissingCookie
	case ReasonMissingHeader:
		return ErrMissingHeader
	case ReasonTokenMismatch:
		return ErrTokenMismatch
	default:
		return nil
	}
}

// Verdict is the result of Guard.Verify.
type Verdict struct {
	Accepted bool
	Reason   Reason
}

var accepted = Verdict{Accepted: true}

func rejected(r Reason) Verdict {
	return Verdict{Reason: r}
}
