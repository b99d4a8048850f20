// Package forms implements the marketing-site form submission pipeline:
// contact and demo request payloads are validated, composed into notification
// emails and handed to the delivery client, all within a single stateless
// request-response cycle.
//
// The pipeline has three terminal failure outcomes next to success:
// rejection (missing-fields or invalid-email, user-correctable), provider
// misconfiguration (deployment defect) and delivery failure (provider-side).
// Submissions are never stored and a failed delivery is never retried
// automatically; the caller is told so it can prompt the user.
//
// When no delivery credential is configured and the deployment explicitly
// allows it, a development bypass saves composed emails to disk and returns
// synthetic acknowledgments with a distinct "dev-" id prefix.
package forms
