package forms

import (
	"errors"

	"github.com/docsynk/formrelay/pkg/validator"
)

// Validate checks presence of all required contact fields, then the email
// format. The first failing category wins: a submission missing fields is
// reported as ErrMissingFields even when the email is also malformed, so the
// UI shows one actionable message at a time. Validation is pure and performs
// no I/O.
func (s ContactSubmission) Validate() error {
	if err := validator.Apply(
		validator.RequiredString("name", s.Name),
		validator.RequiredString("email", s.Email),
		validator.RequiredString("inquiryType", s.InquiryType),
		validator.RequiredString("subject", s.Subject),
		validator.RequiredString("message", s.Message),
	); err != nil {
		return errors.Join(ErrMissingFields, err)
	}

	if err := validator.Apply(
		validator.ValidEmail("email", s.Email),
	); err != nil {
		return errors.Join(ErrInvalidEmail, err)
	}

	return nil
}

// Validate checks presence of all required demo request fields, including at
// least one shipping region, then the email format. Same category ordering as
// the contact form.
func (s DemoRequestSubmission) Validate() error {
	if err := validator.Apply(
		validator.RequiredString("firstName", s.FirstName),
		validator.RequiredString("lastName", s.LastName),
		validator.RequiredString("email", s.Email),
		validator.RequiredString("companyName", s.CompanyName),
		validator.RequiredString("companySize", s.CompanySize),
		validator.NonEmptySlice("shippingRegions", s.ShippingRegions),
		validator.RequiredString("challenge", s.Challenge),
	); err != nil {
		return errors.Join(ErrMissingFields, err)
	}

	if err := validator.Apply(
		validator.ValidEmail("email", s.Email),
	); err != nil {
		return errors.Join(ErrInvalidEmail, err)
	}

	return nil
}
