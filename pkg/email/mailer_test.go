package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docsynk/formrelay/pkg/email"
)

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  email.SendEmailParams
		wantErr bool
	}{
		{
			name: "valid params",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
				Tag:      "test",
			},
		},
		{
			name: "valid params with reply-to",
			params: email.SendEmailParams{
				SendTo:      "user@example.com",
				ReplyTo:     "jane@acme.com",
				ReplyToName: "Jane Doe",
				Subject:     "Test Subject",
				BodyHTML:    "<p>Test body</p>",
				BodyText:    "Test body",
			},
		},
		{
			name: "empty SendTo",
			params: email.SendEmailParams{
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
		},
		{
			name: "malformed SendTo",
			params: email.SendEmailParams{
				SendTo:   "not-an-email",
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
		},
		{
			name: "malformed ReplyTo",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				ReplyTo:  "a@b",
				Subject:  "Test Subject",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
		},
		{
			name: "empty Subject",
			params: email.SendEmailParams{
				SendTo:   "user@example.com",
				BodyHTML: "<p>Test body</p>",
			},
			wantErr: true,
		},
		{
			name: "empty BodyHTML",
			params: email.SendEmailParams{
				SendTo:  "user@example.com",
				Subject: "Test Subject",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_IsConfigured(t *testing.T) {
	t.Parallel()

	assert.False(t, email.Config{}.IsConfigured())
	assert.False(t, email.Config{PostmarkServerToken: "srv"}.IsConfigured())
	assert.False(t, email.Config{PostmarkAccountToken: "acc"}.IsConfigured())
	assert.True(t, email.Config{
		PostmarkServerToken:  "srv",
		PostmarkAccountToken: "acc",
	}.IsConfigured())
}
