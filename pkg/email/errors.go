package email

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates the sender configuration is incomplete or malformed.
	ErrInvalidConfig = errors.New("mailer.errors.invalid_config")
	// ErrNotConfigured indicates delivery was attempted without provider credentials.
	ErrNotConfigured = errors.New("mailer.errors.not_configured")
	// ErrInvalidParams indicates the send parameters failed validation.
	ErrInvalidParams = errors.New("mailer.errors.invalid_params")
	// ErrFailedToSendEmail indicates the provider rejected or failed the send.
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
)

// DeliveryError carries the provider's error code and response message for
// diagnostics. It always wraps ErrFailedToSendEmail so callers can match the
// category with errors.Is without inspecting provider details.
type DeliveryError struct {
	Code    int
	Message string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email delivery failed: provider code %d: %s", e.Code, e.Message)
}

func (e *DeliveryError) Unwrap() error {
	return ErrFailedToSendEmail
}
