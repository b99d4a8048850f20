// Package email provides a provider-agnostic interface for sending
// transactional emails, with a Postmark-backed client for production and a
// DevSender that writes emails to disk for local development.
//
// All implementations validate parameters before sending and report failures
// through sentinel errors:
//   - ErrInvalidConfig: sender configuration is incomplete
//   - ErrNotConfigured: delivery attempted without provider credentials
//   - ErrInvalidParams: send parameters failed validation
//   - ErrFailedToSendEmail: the provider rejected or failed the send
//
// Provider rejections additionally carry a *DeliveryError with the provider's
// error code and message for server-side diagnostics:
//
//	var de *email.DeliveryError
//	if errors.As(err, &de) {
//	    log.Error("provider rejected send", "code", de.Code, "message", de.Message)
//	}
package email
