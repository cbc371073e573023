package postmark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outputtracker/core/email"
	"github.com/dmitrymomot/outputtracker/integration/email/postmark"
)

func validConfig() postmark.Config {
	return postmark.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
		SupportEmail:         "support@example.com",
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*postmark.Config)
	}{
		{name: "missing server token", mutate: func(c *postmark.Config) { c.PostmarkServerToken = "" }},
		{name: "missing account token", mutate: func(c *postmark.Config) { c.PostmarkAccountToken = "" }},
		{name: "invalid sender", mutate: func(c *postmark.Config) { c.SenderEmail = "nope" }},
		{name: "missing support", mutate: func(c *postmark.Config) { c.SupportEmail = "" }},
	}

	require.NoError(t, validConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			_, err := postmark.New(cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Panics(t, func() { postmark.MustNewClient(cfg) })
		})
	}
}

func TestClient_SendEmail(t *testing.T) {
	t.Parallel()

	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"user@example.com","MessageID":"m-1","ErrorCode":0,"Message":"OK"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := postmark.New(validConfig(), postmark.WithBaseURL(srv.URL), postmark.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Hello",
		BodyHTML: "<p>hi</p>",
		Tag:      "greeting",
	})
	require.NoError(t, err)

	assert.Equal(t, "noreply@example.com", received["From"])
	assert.Equal(t, "support@example.com", received["ReplyTo"])
	assert.Equal(t, "user@example.com", received["To"])
	assert.Equal(t, "greeting", received["Tag"])
}

func TestClient_SendEmailProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := postmark.New(validConfig(), postmark.WithBaseURL(srv.URL))
	require.NoError(t, err)

	err = client.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		Subject:  "Hello",
		BodyHTML: "<p>hi</p>",
	})
	assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
}

func TestClient_SendEmailInvalidParams(t *testing.T) {
	t.Parallel()

	client := postmark.MustNewClient(validConfig(), postmark.WithBaseURL("http://127.0.0.1:0"))
	err := client.SendEmail(context.Background(), email.SendEmailParams{SendTo: "user@example.com"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
