package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client *postmark.Client
	config Config
}

// NewPostmarkClient creates a Postmark-backed email sender.
// Addresses are validated eagerly so a broken deployment fails at startup,
// not on the first submission.
func NewPostmarkClient(cfg Config) (Sender, error) {
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.RecipientEmail == "" {
		return nil, fmt.Errorf("%w: RecipientEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.RecipientEmail) {
		return nil, fmt.Errorf("%w: RecipientEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkClient{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmarkClient creates a Postmark client that panics on invalid config.
func MustNewPostmarkClient(cfg Config) Sender {
	client, err := NewPostmarkClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements Sender using Postmark's transactional API.
// Exactly one send request is issued per call; provider failures surface as
// DeliveryError with the provider's code and message, never retried here.
func (c *postmarkClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	// Credential check runs before any network activity so a misconfigured
	// deployment never produces a half-sent request.
	if !c.config.IsConfigured() {
		return fmt.Errorf("%w: Postmark tokens are missing", ErrNotConfigured)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	from := c.config.SenderEmail
	if c.config.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", c.config.SenderName, c.config.SenderEmail)
	}
	replyTo := params.ReplyTo
	if replyTo != "" && params.ReplyToName != "" {
		replyTo = fmt.Sprintf("%s <%s>", params.ReplyToName, params.ReplyTo)
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     from,
		ReplyTo:  replyTo,
		To:       params.SendTo,
		Subject:  params.Subject,
		Tag:      params.Tag,
		HTMLBody: params.BodyHTML,
		TextBody: params.BodyText,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return &DeliveryError{Code: int(resp.ErrorCode), Message: resp.Message}
	}
	return nil
}
