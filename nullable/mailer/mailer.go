package mailer

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/outputtracker/core/email"
	"github.com/dmitrymomot/outputtracker/core/logger"
	"github.com/dmitrymomot/outputtracker/threadsafe"
)

// ErrNotifyFailed wraps any failure to deliver a notification.
var ErrNotifyFailed = errors.New("failed to send notification")

// Notification is a plain-text message addressed to one recipient.
type Notification struct {
	To      string
	Subject string
	Message string
	Tag     string
}

// Mailer renders notifications and hands them to an email sender.
type Mailer struct {
	sender email.EmailSender
	sent   threadsafe.Subject[email.SendEmailParams]
	log    *slog.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used to report failed emits.
func WithLogger(log *slog.Logger) Option {
	return func(m *Mailer) {
		if log != nil {
			m.log = log
		}
	}
}

// New returns a Mailer delivering through sender.
func New(sender email.EmailSender, opts ...Option) *Mailer {
	m := &Mailer{
		sender: sender,
		sent:   threadsafe.NewSubject[email.SendEmailParams](),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewNulled returns a Mailer whose sender accepts every valid message
// without sending anything.
func NewNulled(opts ...Option) *Mailer {
	return New(nulledSender{}, opts...)
}

// TrackNotifications returns a tracker receiving every email sent from now on.
func (m *Mailer) TrackNotifications() (*threadsafe.Tracker[email.SendEmailParams], error) {
	return m.sent.CreateTracker()
}

// Notify renders n and sends it. Trackers see the email only when the
// sender accepted it.
func (m *Mailer) Notify(ctx context.Context, n Notification) error {
	params := render(n)
	if err := params.Validate(); err != nil {
		return errors.Join(ErrNotifyFailed, err)
	}

	if err := m.sender.SendEmail(ctx, params); err != nil {
		return errors.Join(ErrNotifyFailed, err)
	}

	if err := m.sent.Emit(params); err != nil {
		m.log.WarnContext(ctx, "notification not reported to trackers",
			logger.Component("mailer"),
			logger.Subject("notifications"),
			logger.Key("tag", params.Tag),
			logger.Error(err),
		)
	}
	return nil
}

func render(n Notification) email.SendEmailParams {
	var body strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(n.Message), "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		fmt.Fprintf(&body, "<p>%s</p>", html.EscapeString(line))
	}
	return email.SendEmailParams{
		SendTo:   strings.TrimSpace(n.To),
		Subject:  strings.TrimSpace(n.Subject),
		BodyHTML: body.String(),
		Tag:      n.Tag,
	}
}

type nulledSender struct{}

func (nulledSender) SendEmail(context.Context, email.SendEmailParams) error {
	return nil
}
