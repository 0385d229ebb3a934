// Package email defines the EmailSender abstraction used to deliver contact
// form submissions, plus a development implementation.
//
//	sender := email.NewDevSender(log, "./tmp/emails")
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "hello@tahmid.space",
//		ReplyTo:  "visitor@example.com",
//		Subject:  "New message from the portfolio",
//		BodyText: "Hi!",
//		Tag:      "contact",
//	})
//
// Implementations call SendEmailParams.Validate first; validation errors wrap
// ErrInvalidParams and delivery errors wrap ErrFailedToSendEmail. The Postmark
// implementation lives in integration/email/postmark.
package email
