package email

import (
	"context"
	"fmt"
	"regexp"
)

// Sender represents an interface for sending emails.
type Sender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending a single email.
type SendEmailParams struct {
	SendTo      string `json:"send_to"`                 // Email address of the recipient
	ReplyTo     string `json:"reply_to,omitempty"`      // Optional reply-to address, e.g. the form submitter
	ReplyToName string `json:"reply_to_name,omitempty"` // Optional display name for the reply-to address
	Subject     string `json:"subject"`                 // Subject of the email
	BodyHTML    string `json:"body_html"`               // HTML body of the email
	BodyText    string `json:"body_text,omitempty"`     // Optional plain-text alternative body
	Tag         string `json:"tag,omitempty"`           // Optional provider-side categorization tag
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks that the parameters are sufficient to send an email.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.ReplyTo != "" && !emailRegex.MatchString(p.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}
