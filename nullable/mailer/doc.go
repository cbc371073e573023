// Package mailer sends user notifications by email and reports every sent
// message to output trackers.
//
// In production the Mailer talks to an email.EmailSender such as the
// Postmark client. NewNulled swaps the sender for one that accepts every
// message, so tests can assert on what would have been sent:
//
//	m := mailer.NewNulled()
//	sent, _ := m.TrackNotifications()
//	_ = m.Notify(ctx, mailer.Notification{To: "ann@example.com", Subject: "Hi", Message: "Welcome"})
//	emails, _ := sent.Output()
//
// The Mailer is safe for concurrent use.
package mailer
