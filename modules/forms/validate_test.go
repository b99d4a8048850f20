package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsynk/formrelay/modules/forms"
)

func validContact() forms.ContactSubmission {
	return forms.ContactSubmission{
		Name:        "Jane Doe",
		Email:       "jane@acme.com",
		InquiryType: forms.InquirySales,
		Subject:     "Pricing question",
		Message:     "How much for 500 shipments?",
	}
}

func validDemoRequest() forms.DemoRequestSubmission {
	return forms.DemoRequestSubmission{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@acme.com",
		CompanyName:     "Acme Logistics",
		CompanySize:     forms.CompanySizeMedium,
		ShippingRegions: []string{"north-america", "europe"},
		CurrentTools:    []string{"email", "sharepoint"},
		Challenge:       "Documents get lost between teams.",
	}
}

func TestContactSubmission_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validContact().Validate())
	})

	t.Run("valid without optional fields", func(t *testing.T) {
		t.Parallel()

		s := validContact()
		s.Company = ""
		s.Phone = ""
		assert.NoError(t, s.Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		mutations := map[string]func(*forms.ContactSubmission){
			"name":        func(s *forms.ContactSubmission) { s.Name = "" },
			"email":       func(s *forms.ContactSubmission) { s.Email = "" },
			"inquiryType": func(s *forms.ContactSubmission) { s.InquiryType = "" },
			"subject":     func(s *forms.ContactSubmission) { s.Subject = "" },
			"message":     func(s *forms.ContactSubmission) { s.Message = "" },
		}
		for field, mutate := range mutations {
			field, mutate := field, mutate
			t.Run(field, func(t *testing.T) {
				t.Parallel()

				s := validContact()
				mutate(&s)
				err := s.Validate()
				require.Error(t, err)
				assert.ErrorIs(t, err, forms.ErrMissingFields)
				assert.Equal(t, forms.ReasonMissingFields, forms.RejectionReason(err))
			})
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		for _, addr := range []string{"not-an-email", "a@b", "@domain.com"} {
			s := validContact()
			s.Email = addr
			err := s.Validate()
			require.Error(t, err, addr)
			assert.ErrorIs(t, err, forms.ErrInvalidEmail, addr)
			assert.Equal(t, forms.ReasonInvalidEmail, forms.RejectionReason(err))
		}
	})

	t.Run("missing fields win over invalid email", func(t *testing.T) {
		t.Parallel()

		s := validContact()
		s.Subject = ""
		s.Email = "broken"
		err := s.Validate()
		assert.ErrorIs(t, err, forms.ErrMissingFields)
		assert.NotErrorIs(t, err, forms.ErrInvalidEmail)
	})
}

func TestDemoRequestSubmission_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validDemoRequest().Validate())
	})

	t.Run("valid without tools", func(t *testing.T) {
		t.Parallel()

		s := validDemoRequest()
		s.CurrentTools = nil
		assert.NoError(t, s.Validate())
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		mutations := map[string]func(*forms.DemoRequestSubmission){
			"firstName":       func(s *forms.DemoRequestSubmission) { s.FirstName = "" },
			"lastName":        func(s *forms.DemoRequestSubmission) { s.LastName = "" },
			"email":           func(s *forms.DemoRequestSubmission) { s.Email = "" },
			"companyName":     func(s *forms.DemoRequestSubmission) { s.CompanyName = "" },
			"companySize":     func(s *forms.DemoRequestSubmission) { s.CompanySize = "" },
			"shippingRegions": func(s *forms.DemoRequestSubmission) { s.ShippingRegions = nil },
			"challenge":       func(s *forms.DemoRequestSubmission) { s.Challenge = "" },
		}
		for field, mutate := range mutations {
			field, mutate := field, mutate
			t.Run(field, func(t *testing.T) {
				t.Parallel()

				s := validDemoRequest()
				mutate(&s)
				err := s.Validate()
				require.Error(t, err)
				assert.ErrorIs(t, err, forms.ErrMissingFields)
			})
		}
	})

	t.Run("empty shipping regions slice", func(t *testing.T) {
		t.Parallel()

		s := validDemoRequest()
		s.ShippingRegions = []string{}
		assert.ErrorIs(t, s.Validate(), forms.ErrMissingFields)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		s := validDemoRequest()
		s.Email = "user@domain"
		assert.ErrorIs(t, s.Validate(), forms.ErrInvalidEmail)
	})
}

func TestRejectionReason_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, forms.RejectionReason(assert.AnError))
	assert.False(t, forms.IsValidationError(assert.AnError))
	assert.True(t, forms.IsValidationError(forms.ErrMissingFields))
}
