package email

// Config holds delivery provider configuration.
// PostmarkServerToken and PostmarkAccountToken are optional so non-production
// deployments can run without a provider account; SenderEmail and
// RecipientEmail are required with no literal fallback, since a wrong default
// address silently misroutes submissions.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SenderName           string `env:"SENDER_NAME" envDefault:"DocSynk Website"`
	RecipientEmail       string `env:"RECIPIENT_EMAIL,required"`
}

// IsConfigured reports whether provider credentials are present, i.e. whether
// real delivery is possible.
func (c Config) IsConfigured() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}
