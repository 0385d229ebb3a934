// Package postmark implements email.EmailSender with the Postmark API.
//
//	sender, err := postmark.New(postmark.Config{
//		PostmarkServerToken: token,
//		SenderEmail:         "noreply@tahmid.space",
//		SupportEmail:        "hello@tahmid.space",
//	})
//
// Postmark reports some rejections with a 200 response and a non-zero
// ErrorCode; both those and transport errors wrap email.ErrFailedToSendEmail.
package postmark
