package email

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// EmailSender delivers a single transactional email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams is the content and routing of one email.
type SendEmailParams struct {
	SendTo   string
	ReplyTo  string
	Subject  string
	BodyHTML string
	BodyText string
	Tag      string
}

// Validate checks required fields and address syntax.
func (p SendEmailParams) Validate() error {
	var errs []error

	if strings.TrimSpace(p.SendTo) == "" {
		errs = append(errs, errors.New("send_to is required"))
	} else if !IsValidAddress(p.SendTo) {
		errs = append(errs, fmt.Errorf("send_to %q is not a valid address", p.SendTo))
	}
	if p.ReplyTo != "" && !IsValidAddress(p.ReplyTo) {
		errs = append(errs, fmt.Errorf("reply_to %q is not a valid address", p.ReplyTo))
	}
	if strings.TrimSpace(p.Subject) == "" {
		errs = append(errs, errors.New("subject is required"))
	}
	if strings.TrimSpace(p.BodyHTML) == "" && strings.TrimSpace(p.BodyText) == "" {
		errs = append(errs, errors.New("body is required"))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidParams}, errs...)...)
	}
	return nil
}

// IsValidAddress reports whether s is a bare address such as "me@tahmid.space".
// Display-name forms are rejected.
func IsValidAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
