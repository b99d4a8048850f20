package forms

import "errors"

var (
	// ErrMissingFields indicates one or more required fields are absent.
	ErrMissingFields = errors.New("forms.errors.missing_fields")
	// ErrInvalidEmail indicates the submitter's email address is malformed.
	ErrInvalidEmail = errors.New("forms.errors.invalid_email")
)

// Rejection reasons exposed to callers so user-facing layers can render
// distinct messages per category.
const (
	ReasonMissingFields = "missing-fields"
	ReasonInvalidEmail  = "invalid-email"
)

// RejectionReason maps a validation error to its machine-distinguishable
// reason. Returns an empty string for non-validation errors.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return ReasonMissingFields
	case errors.Is(err, ErrInvalidEmail):
		return ReasonInvalidEmail
	default:
		return ""
	}
}

// IsValidationError reports whether err is a user-correctable rejection.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidEmail)
}
