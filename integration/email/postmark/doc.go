// Package postmark implements email.EmailSender on top of the Postmark API.
//
//	cfg := postmark.Config{
//		PostmarkServerToken:  "server-token",
//		PostmarkAccountToken: "account-token",
//		SenderEmail:          "noreply@example.com",
//		SupportEmail:         "support@example.com",
//	}
//	sender, err := postmark.New(cfg)
//	if err != nil {
//		return err
//	}
//	m := mailer.New(sender)
//
// Config carries env tags (POSTMARK_SERVER_TOKEN, POSTMARK_ACCOUNT_TOKEN,
// SENDER_EMAIL, SUPPORT_EMAIL) for use with core/config. Invalid
// configuration is reported as email.ErrInvalidConfig; delivery failures as
// email.ErrFailedToSendEmail joined with the provider error.
package postmark
