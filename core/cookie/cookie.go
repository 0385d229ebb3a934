package cookie

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// MaxCookieSize is the maximum size of a serialized Set-Cookie header value.
const MaxCookieSize = 4096

// Manager builds and reads cookies using shared defaults.
type Manager struct {
	defaults Options
	maxSize  int
}

// ManagerOption configures the Manager itself rather than individual cookies.
type ManagerOption func(*Manager)

// WithMaxSize sets the maximum cookie size.
func WithMaxSize(size int) ManagerOption {
	return func(m *Manager) {
		if size > 0 {
			m.maxSize = size
		}
	}
}

// New creates a cookie manager. Defaults are Path=/, HttpOnly and SameSite=Lax.
func New(opts ...Option) *Manager {
	defaults := applyOptions(Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, opts)

	return &Manager{
		defaults: defaults,
		maxSize:  MaxCookieSize,
	}
}

// NewWithOptions creates a cookie manager with additional manager options.
func NewWithOptions(cookieOpts []Option, managerOpts ...ManagerOption) *Manager {
	m := New(cookieOpts...)
	for _, opt := range managerOpts {
		opt(m)
	}
	return m
}

// Build returns a cookie with the manager defaults and opts applied.
// Names and values that are not valid cookie tokens are rejected.
func (m *Manager) Build(name, value string, opts ...Option) (*http.Cookie, error) {
	if name == "" || strings.ContainsAny(name, invalidNameChars) {
		return nil, ErrInvalidName
	}

	options := applyOptions(m.defaults, opts)

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if options.MaxAge > 0 {
		c.Expires = time.Now().Add(time.Duration(options.MaxAge) * time.Second).UTC()
	}

	if err := c.Valid(); err != nil {
		return nil, errors.Join(ErrInvalidFormat, err)
	}

	if size := len(c.String()); size > m.maxSize {
		return nil, ErrCookieTooLarge{Name: name, Size: size, Max: m.maxSize}
	}

	return c, nil
}

// Set writes a Set-Cookie header.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	c, err := m.Build(name, value, opts...)
	if err != nil {
		return err
	}
	http.SetCookie(w, c)
	return nil
}

// Get retrieves a cookie value. An empty value is reported as ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	if c.Value == "" {
		return "", ErrCookieNotFound
	}
	return c.Value, nil
}

const invalidNameChars = " \t\r\n;,=\"()<>@:\\/[]?{}"
