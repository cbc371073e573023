package postmark

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/outputtracker/core/email"
)

// Config holds the Postmark credentials and sender identity.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL"`
	SupportEmail         string `env:"SUPPORT_EMAIL"`
}

// Validate reports the first missing or malformed field.
func (c Config) Validate() error {
	switch {
	case c.PostmarkServerToken == "":
		return fmt.Errorf("%w: PostmarkServerToken is required", email.ErrInvalidConfig)
	case c.PostmarkAccountToken == "":
		return fmt.Errorf("%w: PostmarkAccountToken is required", email.ErrInvalidConfig)
	case !isValidEmail(c.SenderEmail):
		return fmt.Errorf("%w: SenderEmail must be a valid email address", email.ErrInvalidConfig)
	case !isValidEmail(c.SupportEmail):
		return fmt.Errorf("%w: SupportEmail must be a valid email address", email.ErrInvalidConfig)
	}
	return nil
}

// Option configures the underlying Postmark client.
type Option func(*postmark.Client)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return func(c *postmark.Client) {
		c.BaseURL = url
	}
}

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *postmark.Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// Client sends email through Postmark's transactional API.
type Client struct {
	client *postmark.Client
	config Config
}

var _ email.EmailSender = (*Client)(nil)

// New creates a Postmark-backed email sender.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pc := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	for _, opt := range opts {
		opt(pc)
	}

	return &Client{client: pc, config: cfg}, nil
}

// MustNewClient is like New but panics on invalid config.
func MustNewClient(cfg Config, opts ...Option) *Client {
	client, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail sends params with the configured sender as From and the support
// address as Reply-To. Opens and HTML link clicks are tracked.
func (c *Client) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:       c.config.SenderEmail,
		ReplyTo:    c.config.SupportEmail,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return errors.Join(email.ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			email.ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
