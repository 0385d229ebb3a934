package postmark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahmidspace/portfolio/core/email"
	"github.com/tahmidspace/portfolio/integration/email/postmark"
)

func testConfig() postmark.Config {
	return postmark.Config{
		PostmarkServerToken: "server-token",
		SenderEmail:         "noreply@tahmid.space",
		SupportEmail:        "hello@tahmid.space",
		MessageStream:       "outbound",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.PostmarkServerToken = ""
	_, err := postmark.New(cfg)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	cfg = testConfig()
	cfg.SenderEmail = "noreply"
	_, err = postmark.New(cfg)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	assert.Panics(t, func() { postmark.MustNewClient(postmark.Config{}) })
}

func TestSendEmail(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email", r.URL.Path)
		assert.Equal(t, "server-token", r.Header.Get("X-Postmark-Server-Token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"hello@tahmid.space","MessageID":"abc","ErrorCode":0,"Message":"OK"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := postmark.New(testConfig(), postmark.WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "hello@tahmid.space",
		ReplyTo:  "visitor@example.com",
		Subject:  "New message",
		BodyText: "Hi",
		Tag:      "contact",
	})
	require.NoError(t, err)

	assert.Equal(t, "noreply@tahmid.space", got["From"])
	assert.Equal(t, "visitor@example.com", got["ReplyTo"])
	assert.Equal(t, "New message", got["Subject"])
	assert.Equal(t, "Hi", got["TextBody"])
	assert.Equal(t, "contact", got["Tag"])
}

func TestSendEmail_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := postmark.New(testConfig(), postmark.WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "hello@tahmid.space",
		Subject:  "New message",
		BodyText: "Hi",
	})
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}

func TestSendEmail_InvalidParams(t *testing.T) {
	t.Parallel()

	client, err := postmark.New(testConfig())
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), email.SendEmailParams{})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
