// Package email defines the contract for sending transactional email.
//
// FileSender writes emails to a local directory. integration/email/postmark
// sends through the Postmark API, and the nullable mailer ships an in-memory
// sender.
//
//	params := email.SendEmailParams{
//		SendTo:   "customer@example.com",
//		Subject:  "Your todo is due",
//		BodyHTML: "<p>Buy milk</p>",
//		Tag:      "todo_due",
//	}
//	if err := sender.SendEmail(ctx, params); err != nil {
//		switch {
//		case errors.Is(err, email.ErrInvalidParams):
//			// caller bug
//		case errors.Is(err, email.ErrFailedToSendEmail):
//			// provider failure, may be retried
//		}
//	}
package email
