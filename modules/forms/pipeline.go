package forms

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docsynk/formrelay/pkg/email"
	"github.com/docsynk/formrelay/pkg/logger"
)

// Config holds pipeline behavior configuration.
// AllowDevBypass must only be set for non-production deployments; the bypass
// path never runs when a delivery credential is configured.
type Config struct {
	AllowDevBypass bool          `env:"ALLOW_DEV_BYPASS" envDefault:"false"`
	DevMailDir     string        `env:"DEV_MAIL_DIR" envDefault:"./tmp/emails"`
	SendTimeout    time.Duration `env:"SEND_TIMEOUT" envDefault:"15s"`
}

// Pipeline runs a submission through validation, composition and delivery.
// It holds no per-request state; concurrent submissions are independent.
type Pipeline struct {
	cfg    Config
	mail   email.Config
	sender email.Sender // nil when the provider is not configured
	dev    email.Sender // non-nil only when the dev bypass is active
	log    *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option overrides pipeline collaborators, mainly for tests.
type Option func(*Pipeline)

// WithSender replaces the delivery client. The pipeline treats the injected
// sender as fully configured.
func WithSender(s email.Sender) Option {
	return func(p *Pipeline) { p.sender = s }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// WithIDGenerator replaces the acknowledgment id source.
func WithIDGenerator(newID func() string) Option {
	return func(p *Pipeline) {
		if newID != nil {
			p.newID = newID
		}
	}
}

// NewPipeline wires a pipeline from configuration. When provider credentials
// are present a Postmark client is constructed (and address misconfiguration
// fails here, at startup). Without credentials the pipeline either activates
// the dev bypass (if allowed) or reports ErrNotConfigured per submission.
func NewPipeline(cfg Config, mailCfg email.Config, log *slog.Logger, opts ...Option) (*Pipeline, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Pipeline{
		cfg:   cfg,
		mail:  mailCfg,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}

	if mailCfg.IsConfigured() {
		sender, err := email.NewPostmarkClient(mailCfg)
		if err != nil {
			return nil, fmt.Errorf("build delivery client: %w", err)
		}
		p.sender = sender
	} else if cfg.AllowDevBypass {
		p.dev = email.NewDevSender(cfg.DevMailDir, log)
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Configured reports whether real delivery is possible.
func (p *Pipeline) Configured() bool {
	return p.sender != nil
}

// SubmitContact runs a contact submission through the pipeline.
// A validation failure short-circuits before any network activity.
func (p *Pipeline) SubmitContact(ctx context.Context, s ContactSubmission) (Acknowledgment, error) {
	if err := s.Validate(); err != nil {
		return Acknowledgment{}, err
	}

	out, err := ComposeContactEmail(s, p.now())
	if err != nil {
		return Acknowledgment{}, err
	}

	if p.sender == nil {
		return p.handleUnconfigured(ctx, "contact", out, Acknowledgment{
			Message: "Your message has been received (development mode)",
		})
	}

	if err := p.deliver(ctx, "contact", out); err != nil {
		return Acknowledgment{}, err
	}

	return Acknowledgment{
		ID:        "contact-" + p.newID(),
		Timestamp: p.now().UTC().Format(time.RFC3339),
		Message:   "Your message has been sent successfully",
	}, nil
}

// SubmitDemoRequest runs a demo request submission through the pipeline.
func (p *Pipeline) SubmitDemoRequest(ctx context.Context, s DemoRequestSubmission) (Acknowledgment, error) {
	if err := s.Validate(); err != nil {
		return Acknowledgment{}, err
	}

	out, err := ComposeDemoRequestEmail(s, p.now())
	if err != nil {
		return Acknowledgment{}, err
	}

	if p.sender == nil {
		return p.handleUnconfigured(ctx, "demo-request", out, Acknowledgment{
			Message: "Your request has been received (development mode)",
			Status:  "pending",
		})
	}

	if err := p.deliver(ctx, "demo-request", out); err != nil {
		return Acknowledgment{}, err
	}

	return Acknowledgment{
		ID:        "demo-" + p.newID(),
		Timestamp: p.now().UTC().Format(time.RFC3339),
		Message:   "We'll contact you within 24 hours to schedule your personalized demo",
		Status:    "pending",
	}, nil
}

// deliver issues exactly one send attempt, bounded by the configured timeout.
// Provider details go to the log only; the error returned to the transport
// layer carries just the category.
func (p *Pipeline) deliver(ctx context.Context, form string, out OutboundEmail) error {
	if p.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.SendTimeout)
		defer cancel()
	}

	err := p.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:      p.mail.RecipientEmail,
		ReplyTo:     out.ReplyTo,
		ReplyToName: out.ReplyToName,
		Subject:     out.Subject,
		BodyHTML:    out.HTMLBody,
		BodyText:    out.TextBody,
		Tag:         out.Tag,
	})
	if err != nil {
		p.log.ErrorContext(ctx, "email delivery failed",
			logger.Form(form),
			slog.String("subject", out.Subject),
			logger.Error(err),
		)
		return err
	}

	p.log.InfoContext(ctx, "submission delivered",
		logger.Form(form),
		slog.String("subject", out.Subject),
	)
	return nil
}

// handleUnconfigured resolves a submission when no provider is configured:
// dev bypass when allowed, otherwise a configuration alert. The bypass saves
// the composed email locally and synthesizes a "dev-" acknowledgment without
// any outbound call.
func (p *Pipeline) handleUnconfigured(ctx context.Context, form string, out OutboundEmail, ack Acknowledgment) (Acknowledgment, error) {
	if p.dev == nil {
		// Deployment defect, not a user error. Logged distinctly from
		// delivery failures so operators can alert on it.
		p.log.ErrorContext(ctx, "email provider not configured",
			logger.Form(form),
			slog.Bool("dev_bypass_allowed", p.cfg.AllowDevBypass),
		)
		return Acknowledgment{}, fmt.Errorf("%w: delivery credential is missing", email.ErrNotConfigured)
	}

	if err := p.dev.SendEmail(ctx, email.SendEmailParams{
		SendTo:      p.mail.RecipientEmail,
		ReplyTo:     out.ReplyTo,
		ReplyToName: out.ReplyToName,
		Subject:     out.Subject,
		BodyHTML:    out.HTMLBody,
		BodyText:    out.TextBody,
		Tag:         out.Tag,
	}); err != nil {
		// The bypass is best-effort; a failed local save must not fail the
		// submission.
		p.log.WarnContext(ctx, "dev bypass failed to save email",
			logger.Form(form),
			logger.Error(err),
		)
	}

	p.log.InfoContext(ctx, "submission handled by dev bypass",
		logger.Form(form),
		slog.String("subject", out.Subject),
	)

	ack.ID = "dev-" + p.newID()
	ack.Timestamp = p.now().UTC().Format(time.RFC3339)
	return ack, nil
}
