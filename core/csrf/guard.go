package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/tahmidspace/portfolio/core/cookie"
)

// TokenBytes is the number of random bytes in a token; tokens are hex encoded.
const TokenBytes = 32

// Guard verifies that state-changing requests come from the serving origin
// and carry a token matching the token cookie.
type Guard struct {
	cfg       Config
	origin    string
	cookies   *cookie.Manager
	cookieCfg cookie.Config
	random    io.Reader
}

// Option configures a Guard.
type Option func(*Guard)

// WithRandom replaces crypto/rand as the token entropy source.
func WithRandom(r io.Reader) Option {
	return func(g *Guard) {
		if r != nil {
			g.random = r
		}
	}
}

// WithCookieConfig sets the shared cookie settings (domain, path, secure, size)
// applied to the token cookie.
func WithCookieConfig(cfg cookie.Config) Option {
	return func(g *Guard) {
		g.cookieCfg = cfg
	}
}

// New creates a guard with DefaultConfig.
func New(opts ...Option) *Guard {
	g, _ := NewFromConfig(DefaultConfig(), opts...)
	return g
}

// NewFromConfig creates a guard. A non-empty Config.Origin must be an absolute
// origin such as "https://tahmid.space"; a single trailing slash is tolerated.
func NewFromConfig(cfg Config, opts ...Option) (*Guard, error) {
	cfg = cfg.withDefaults()

	var origin string
	if cfg.Origin != "" {
		var ok bool
		origin, ok = parseOrigin(strings.TrimSuffix(cfg.Origin, "/"), true)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOrigin, cfg.Origin)
		}
	}

	g := &Guard{
		cfg:    cfg,
		origin: origin,
		random: rand.Reader,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.cookies = cookie.NewFromConfig(g.cookieCfg,
		cookie.WithSecure(g.cookieCfg.Secure || cfg.IsProductionLike),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)

	return g, nil
}

// Config returns the effective configuration.
func (g *Guard) Config() Config {
	return g.cfg
}

// Verify checks the request origin first, then the double-submitted token.
// It performs no I/O.
func (g *Guard) Verify(r *http.Request) Verdict {
	if !g.sameOrigin(r) {
		return rejected(ReasonOriginMismatch)
	}

	cookieToken, err := g.cookies.Get(r, g.cfg.CookieName)
	if err != nil {
		return rejected(ReasonMissingCookie)
	}

	headerToken := r.Header.Get(g.cfg.HeaderName)
	if headerToken == "" {
		return rejected(ReasonMissingHeader)
	}

	if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) != 1 {
		return rejected(ReasonTokenMismatch)
	}

	return accepted
}

// Exempt reports whether r matches one of Config.ExemptPaths (path.Match syntax).
func (g *Guard) Exempt(r *http.Request) bool {
	for _, pattern := range g.cfg.ExemptPaths {
		if ok, _ := path.Match(pattern, r.URL.Path); ok {
			return true
		}
	}
	return false
}

// NewToken returns a fresh hex-encoded token of TokenBytes random bytes.
func (g *Guard) NewToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := io.ReadFull(g.random, b); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerateToken, err)
	}
	return hex.EncodeToString(b), nil
}

// Issue mints a token and sets it as the token cookie on w, replacing any
// previous one. The cookie lives for the browser session.
func (g *Guard) Issue(w http.ResponseWriter) (string, error) {
	token, err := g.NewToken()
	if err != nil {
		return "", err
	}
	if err := g.cookies.Set(w, g.cfg.CookieName, token); err != nil {
		return "", err
	}
	return token, nil
}
