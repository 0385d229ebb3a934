package csrf_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahmidspace/portfolio/core/cookie"
	"github.com/tahmidspace/portfolio/core/csrf"
)

var hex64 = regexp.MustCompile(`^[0-9a-f]{64}$`)

func newGuard(t *testing.T) *csrf.Guard {
	t.Helper()
	g, err := csrf.NewFromConfig(csrf.Config{Origin: "https://tahmid.space"})
	require.NoError(t, err)
	return g
}

func postRequest(headers map[string]string, cookieToken string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "https://tahmid.space/api/contact", strings.NewReader("{}"))
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	if cookieToken != "" {
		r.AddCookie(&http.Cookie{Name: "csrf-token", Value: cookieToken})
	}
	return r
}

func TestVerify_Origin(t *testing.T) {
	t.Parallel()

	g := newGuard(t)

	tests := []struct {
		name    string
		headers map[string]string
		want    csrf.Verdict
	}{
		{
			name:    "foreign origin",
			headers: map[string]string{"Origin": "https://evil.example", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Reason: csrf.ReasonOriginMismatch},
		},
		{
			name:    "exact origin",
			headers: map[string]string{"Origin": "https://tahmid.space", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Accepted: true},
		},
		{
			name:    "origin case insensitive",
			headers: map[string]string{"Origin": "HTTPS://Tahmid.Space", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Accepted: true},
		},
		{
			name:    "scheme differs",
			headers: map[string]string{"Origin": "http://tahmid.space", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Reason: csrf.ReasonOriginMismatch},
		},
		{
			name:    "port differs",
			headers: map[string]string{"Origin": "https://tahmid.space:8443", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Reason: csrf.ReasonOriginMismatch},
		},
		{
			name:    "origin with root path",
			headers: map[string]string{"Origin": "https://tahmid.space/", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Reason: csrf.ReasonOriginMismatch},
		},
		{
			name:    "origin with explicit default port",
			headers: map[string]string{"Origin": "https://tahmid.space:443", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Reason: csrf.ReasonOriginMismatch},
		},
		{
			name:    "null origin",
			headers: map[string]string{"Origin": "null", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Reason: csrf.ReasonOriginMismatch},
		},
		{
			name:    "referer fallback same origin",
			headers: map[string]string{"Referer": "https://tahmid.space/contact?x=1", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Accepted: true},
		},
		{
			name:    "referer fallback foreign",
			headers: map[string]string{"Referer": "https://evil.example/page", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Reason: csrf.ReasonOriginMismatch},
		},
		{
			name:    "origin wins over referer",
			headers: map[string]string{"Origin": "https://evil.example", "Referer": "https://tahmid.space/", "X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Reason: csrf.ReasonOriginMismatch},
		},
		{
			name:    "neither header",
			headers: map[string]string{"X-CSRF-Token": "abc"},
			want:    csrf.Verdict{Accepted: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, g.Verify(postRequest(tt.headers, "abc")))
		})
	}
}

func TestVerify_Token(t *testing.T) {
	t.Parallel()

	g := newGuard(t)
	origin := "https://tahmid.space"

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()
		v := g.Verify(postRequest(map[string]string{"Origin": origin, "X-CSRF-Token": "xyz"}, "abc"))
		assert.False(t, v.Accepted)
		assert.Equal(t, csrf.ReasonTokenMismatch, v.Reason)
		assert.ErrorIs(t, v.Reason.Err(), csrf.ErrTokenMismatch)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		v := g.Verify(postRequest(map[string]string{"Origin": origin, "X-CSRF-Token": "xyz"}, ""))
		assert.Equal(t, csrf.Verdict{Reason: csrf.ReasonMissingCookie}, v)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		v := g.Verify(postRequest(map[string]string{"Origin": origin}, "abc"))
		assert.Equal(t, csrf.Verdict{Reason: csrf.ReasonMissingHeader}, v)
	})

	t.Run("prefix is not a match", func(t *testing.T) {
		t.Parallel()
		v := g.Verify(postRequest(map[string]string{"Origin": origin, "X-CSRF-Token": "ab"}, "abc"))
		assert.Equal(t, csrf.ReasonTokenMismatch, v.Reason)
	})
}

func TestVerify_DerivedOrigin(t *testing.T) {
	t.Parallel()

	g := csrf.New()

	r := httptest.NewRequest(http.MethodPost, "http://localhost:8080/api/contact", nil)
	r.Header.Set("Origin", "http://localhost:8080")
	r.Header.Set("X-CSRF-Token", "t")
	r.AddCookie(&http.Cookie{Name: "csrf-token", Value: "t"})
	assert.True(t, g.Verify(r).Accepted)

	prod, err := csrf.NewFromConfig(csrf.Config{IsProductionLike: true})
	require.NoError(t, err)
	assert.Equal(t, csrf.ReasonOriginMismatch, prod.Verify(r).Reason)
}

func TestNewFromConfig_TrailingSlashOrigin(t *testing.T) {
	t.Parallel()

	g, err := csrf.NewFromConfig(csrf.Config{Origin: "https://tahmid.space/"})
	require.NoError(t, err)

	r := postRequest(map[string]string{"Origin": "https://tahmid.space", "X-CSRF-Token": "abc"}, "abc")
	assert.True(t, g.Verify(r).Accepted)
}

func TestNewFromConfig_InvalidOrigin(t *testing.T) {
	t.Parallel()

	for _, origin := range []string{"tahmid.space", "https://tahmid.space/path", "null"} {
		_, err := csrf.NewFromConfig(csrf.Config{Origin: origin})
		assert.ErrorIs(t, err, csrf.ErrInvalidOrigin, origin)
	}
}

func TestIssue(t *testing.T) {
	t.Parallel()

	g := newGuard(t)

	issue := func() (string, *http.Cookie) {
		w := httptest.NewRecorder()
		token, err := g.Issue(w)
		require.NoError(t, err)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		return token, cookies[0]
	}

	first, c1 := issue()
	second, c2 := issue()

	assert.Regexp(t, hex64, first)
	assert.Regexp(t, hex64, second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first, c1.Value)
	assert.Equal(t, second, c2.Value)

	assert.Equal(t, "csrf-token", c1.Name)
	assert.True(t, c1.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c1.SameSite)
	assert.Equal(t, "/", c1.Path)
	assert.Zero(t, c1.MaxAge)
	assert.False(t, c1.Secure)
}

func TestIssue_SecureInProduction(t *testing.T) {
	t.Parallel()

	g, err := csrf.NewFromConfig(csrf.Config{IsProductionLike: true})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	_, err = g.Issue(w)
	require.NoError(t, err)
	assert.True(t, w.Result().Cookies()[0].Secure)
}

func TestIssue_SharedCookieConfig(t *testing.T) {
	t.Parallel()

	g, err := csrf.NewFromConfig(csrf.DefaultConfig(), csrf.WithCookieConfig(cookie.Config{
		Domain: "tahmid.space",
		Path:   "/api",
	}))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	_, err = g.Issue(w)
	require.NoError(t, err)

	c := w.Result().Cookies()[0]
	assert.Equal(t, "tahmid.space", c.Domain)
	assert.Equal(t, "/api", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.False(t, c.Secure)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestIssue_RandomnessFailure(t *testing.T) {
	t.Parallel()

	g := csrf.New(csrf.WithRandom(brokenReader{}))

	w := httptest.NewRecorder()
	_, err := g.Issue(w)
	assert.ErrorIs(t, err, csrf.ErrGenerateToken)
	assert.Empty(t, w.Result().Cookies())
}

func TestExempt(t *testing.T) {
	t.Parallel()

	g, err := csrf.NewFromConfig(csrf.Config{ExemptPaths: []string{"/webhooks/*"}})
	require.NoError(t, err)

	assert.True(t, g.Exempt(httptest.NewRequest(http.MethodPost, "/webhooks/postmark", nil)))
	assert.False(t, g.Exempt(httptest.NewRequest(http.MethodPost, "/api/contact", nil)))
}
