package validator

import "regexp"

// Permissive syntactic check only: one @, no whitespace, dotted domain.
// Deliverability is the email provider's problem, not ours.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail validates that a string looks like an email address.
// No DNS or mailbox verification is performed.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}
