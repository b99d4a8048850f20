package forms_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsynk/formrelay/modules/forms"
)

var composeAt = time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)

func TestComposeContactEmail(t *testing.T) {
	t.Parallel()

	t.Run("subject encodes inquiry type and subject", func(t *testing.T) {
		t.Parallel()

		out, err := forms.ComposeContactEmail(validContact(), composeAt)
		require.NoError(t, err)
		assert.Equal(t, "New Contact: sales - Pricing question", out.Subject)
	})

	t.Run("idempotent at the same instant", func(t *testing.T) {
		t.Parallel()

		s := validContact()
		first, err := forms.ComposeContactEmail(s, composeAt)
		require.NoError(t, err)
		second, err := forms.ComposeContactEmail(s, composeAt)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("only the timestamp varies across instants", func(t *testing.T) {
		t.Parallel()

		s := validContact()
		first, err := forms.ComposeContactEmail(s, composeAt)
		require.NoError(t, err)
		second, err := forms.ComposeContactEmail(s, composeAt.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, first.Subject, second.Subject)
		assert.NotEqual(t, first.HTMLBody, second.HTMLBody)

		strip := func(body string) string {
			return strings.ReplaceAll(body, composeAt.Local().Format("Jan 2, 2006 3:04:05 PM MST"), "")
		}
		assert.Equal(t,
			strip(first.HTMLBody),
			strings.ReplaceAll(second.HTMLBody, composeAt.Add(time.Hour).Local().Format("Jan 2, 2006 3:04:05 PM MST"), ""),
			"bodies must be identical apart from the footer timestamp",
		)
	})

	t.Run("optional fields omitted when absent", func(t *testing.T) {
		t.Parallel()

		out, err := forms.ComposeContactEmail(validContact(), composeAt)
		require.NoError(t, err)
		assert.NotContains(t, out.HTMLBody, "Company:")
		assert.NotContains(t, out.HTMLBody, "Phone:")
		assert.NotContains(t, out.TextBody, "Company:")
		assert.NotContains(t, out.TextBody, "Phone:")
	})

	t.Run("optional fields render exactly once when present", func(t *testing.T) {
		t.Parallel()

		s := validContact()
		s.Company = "Acme Logistics"
		s.Phone = "+1 555 0100"
		out, err := forms.ComposeContactEmail(s, composeAt)
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(out.HTMLBody, "Company:"))
		assert.Equal(t, 1, strings.Count(out.HTMLBody, "Acme Logistics"))
		assert.Equal(t, 1, strings.Count(out.HTMLBody, "Phone:"))
		assert.Equal(t, 1, strings.Count(out.HTMLBody, "+1 555 0100"))
	})

	t.Run("message newlines become line breaks", func(t *testing.T) {
		t.Parallel()

		s := validContact()
		s.Message = "line one\nline two\r\nline three"
		out, err := forms.ComposeContactEmail(s, composeAt)
		require.NoError(t, err)
		assert.Contains(t, out.HTMLBody, "line one<br>line two<br>line three")
	})

	t.Run("html in values is escaped", func(t *testing.T) {
		t.Parallel()

		s := validContact()
		s.Name = `<script>alert("x")</script>`
		out, err := forms.ComposeContactEmail(s, composeAt)
		require.NoError(t, err)
		assert.NotContains(t, out.HTMLBody, "<script>")
		assert.Contains(t, out.HTMLBody, "&lt;script&gt;")
	})

	t.Run("reply-to targets the submitter", func(t *testing.T) {
		t.Parallel()

		out, err := forms.ComposeContactEmail(validContact(), composeAt)
		require.NoError(t, err)
		assert.Equal(t, "jane@acme.com", out.ReplyTo)
		assert.Equal(t, "Jane Doe", out.ReplyToName)
		assert.Equal(t, "contact-form", out.Tag)
	})

	t.Run("email rendered as mailto link", func(t *testing.T) {
		t.Parallel()

		out, err := forms.ComposeContactEmail(validContact(), composeAt)
		require.NoError(t, err)
		assert.Contains(t, out.HTMLBody, `<a href="mailto:jane@acme.com">jane@acme.com</a>`)
	})
}

func TestComposeDemoRequestEmail(t *testing.T) {
	t.Parallel()

	t.Run("subject encodes company name and size", func(t *testing.T) {
		t.Parallel()

		out, err := forms.ComposeDemoRequestEmail(validDemoRequest(), composeAt)
		require.NoError(t, err)
		assert.Equal(t, "New Demo Request - Acme Logistics (51-200)", out.Subject)
	})

	t.Run("regions joined with comma-space", func(t *testing.T) {
		t.Parallel()

		out, err := forms.ComposeDemoRequestEmail(validDemoRequest(), composeAt)
		require.NoError(t, err)
		assert.Contains(t, out.HTMLBody, "north-america, europe")
		assert.Contains(t, out.TextBody, "north-america, europe")
	})

	t.Run("tools joined and omitted when empty", func(t *testing.T) {
		t.Parallel()

		withTools, err := forms.ComposeDemoRequestEmail(validDemoRequest(), composeAt)
		require.NoError(t, err)
		assert.Contains(t, withTools.HTMLBody, "email, sharepoint")

		s := validDemoRequest()
		s.CurrentTools = nil
		withoutTools, err := forms.ComposeDemoRequestEmail(s, composeAt)
		require.NoError(t, err)
		assert.NotContains(t, withoutTools.HTMLBody, "Current Tools:")
		assert.NotContains(t, withoutTools.TextBody, "Current Tools:")
	})

	t.Run("challenge newlines become line breaks", func(t *testing.T) {
		t.Parallel()

		s := validDemoRequest()
		s.Challenge = "first\nsecond"
		out, err := forms.ComposeDemoRequestEmail(s, composeAt)
		require.NoError(t, err)
		assert.Contains(t, out.HTMLBody, "first<br>second")
	})

	t.Run("idempotent at the same instant", func(t *testing.T) {
		t.Parallel()

		s := validDemoRequest()
		first, err := forms.ComposeDemoRequestEmail(s, composeAt)
		require.NoError(t, err)
		second, err := forms.ComposeDemoRequestEmail(s, composeAt)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("full name in reply-to", func(t *testing.T) {
		t.Parallel()

		out, err := forms.ComposeDemoRequestEmail(validDemoRequest(), composeAt)
		require.NoError(t, err)
		assert.Equal(t, "jane@acme.com", out.ReplyTo)
		assert.Equal(t, "Jane Doe", out.ReplyToName)
		assert.Equal(t, "demo-request", out.Tag)
	})
}
