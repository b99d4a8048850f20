package forms

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// OutboundEmail is the deterministic rendering of a valid submission. It is
// never persisted and sent at most once per accepted submission.
type OutboundEmail struct {
	Subject     string
	HTMLBody    string
	TextBody    string
	ReplyTo     string
	ReplyToName string
	Tag         string
}

// fieldBlock is one labeled attribute in the rendered email. Optional
// submission attributes are omitted from the slice entirely rather than
// rendered as empty blocks.
type fieldBlock struct {
	Label string
	Value template.HTML
}

type emailDoc struct {
	Title       string
	Banner      string
	Accent      string
	AccentEnd   string
	Fields      []fieldBlock
	Footer      string
	GeneratedAt string
}

// Both form types share one HTML structure: header band, labeled field
// blocks, footer stamped with the generation time.
var emailTmpl = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, {{.Accent}} 0%, {{.AccentEnd}} 100%); color: white; padding: 20px; border-radius: 5px 5px 0 0; }
.banner { background: #22c55e; color: white; padding: 5px 10px; border-radius: 3px; display: inline-block; margin-top: 10px; }
.content { background: #f9f9f9; padding: 20px; border: 1px solid #ddd; border-radius: 0 0 5px 5px; }
.field { margin-bottom: 15px; }
.field-label { font-weight: bold; color: {{.Accent}}; }
.field-value { margin-top: 5px; background: white; padding: 10px; border-radius: 3px; }
.footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h2>{{.Title}}</h2>
{{- if .Banner}}
<div class="banner">{{.Banner}}</div>
{{- end}}
</div>
<div class="content">
{{- range .Fields}}
<div class="field">
<div class="field-label">{{.Label}}:</div>
<div class="field-value">{{.Value}}</div>
</div>
{{- end}}
<div class="footer">
<p>{{.Footer}} {{.GeneratedAt}}</p>
</div>
</div>
</div>
</body>
</html>
`))

const footerTimeLayout = "Jan 2, 2006 3:04:05 PM MST"

func renderEmailHTML(doc emailDoc) (string, error) {
	var sb strings.Builder
	if err := emailTmpl.Execute(&sb, doc); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}
	return sb.String(), nil
}

// textValue escapes a value for embedding in the HTML body.
func textValue(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

// multilineValue escapes a free-text value and converts newlines to <br> so
// the submitter's formatting survives HTML rendering.
func multilineValue(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}

// emailValue renders an address as a mailto link.
func emailValue(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(fmt.Sprintf(`<a href="mailto:%s">%s</a>`, escaped, escaped))
}

// ComposeContactEmail renders a contact submission into an OutboundEmail.
// The output is byte-identical for the same submission and instant; only the
// footer timestamp varies across instants. The submission must already be
// validated.
func ComposeContactEmail(s ContactSubmission, at time.Time) (OutboundEmail, error) {
	fields := []fieldBlock{
		{Label: "Inquiry Type", Value: textValue(s.InquiryType)},
		{Label: "Name", Value: textValue(s.Name)},
		{Label: "Email", Value: emailValue(s.Email)},
	}
	if s.Company != "" {
		fields = append(fields, fieldBlock{Label: "Company", Value: textValue(s.Company)})
	}
	if s.Phone != "" {
		fields = append(fields, fieldBlock{Label: "Phone", Value: textValue(s.Phone)})
	}
	fields = append(fields,
		fieldBlock{Label: "Subject", Value: textValue(s.Subject)},
		fieldBlock{Label: "Message", Value: multilineValue(s.Message)},
	)

	html, err := renderEmailHTML(emailDoc{
		Title:       "New Contact Form Submission",
		Accent:      "#667eea",
		AccentEnd:   "#764ba2",
		Fields:      fields,
		Footer:      "This email was sent from the DocSynk contact form at",
		GeneratedAt: at.Local().Format(footerTimeLayout),
	})
	if err != nil {
		return OutboundEmail{}, err
	}

	return OutboundEmail{
		Subject:     fmt.Sprintf("New Contact: %s - %s", s.InquiryType, s.Subject),
		HTMLBody:    html,
		TextBody:    contactEmailText(s, at),
		ReplyTo:     s.Email,
		ReplyToName: s.Name,
		Tag:         "contact-form",
	}, nil
}

func contactEmailText(s ContactSubmission, at time.Time) string {
	var sb strings.Builder
	sb.WriteString("New Contact Form Submission - DocSynk\n\n")
	fmt.Fprintf(&sb, "Inquiry Type: %s\n", s.InquiryType)
	fmt.Fprintf(&sb, "Name: %s\n", s.Name)
	fmt.Fprintf(&sb, "Email: %s\n", s.Email)
	if s.Company != "" {
		fmt.Fprintf(&sb, "Company: %s\n", s.Company)
	}
	if s.Phone != "" {
		fmt.Fprintf(&sb, "Phone: %s\n", s.Phone)
	}
	fmt.Fprintf(&sb, "Subject: %s\n\n", s.Subject)
	fmt.Fprintf(&sb, "Message:\n%s\n\n", s.Message)
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "Submitted at: %s\n", at.Local().Format(footerTimeLayout))
	return sb.String()
}

// ComposeDemoRequestEmail renders a demo request submission into an
// OutboundEmail. Shipping regions and tools are joined with ", "; the
// currentTools block is omitted when no tools were selected.
func ComposeDemoRequestEmail(s DemoRequestSubmission, at time.Time) (OutboundEmail, error) {
	fields := []fieldBlock{
		{Label: "Contact Name", Value: textValue(s.FirstName + " " + s.LastName)},
		{Label: "Email", Value: emailValue(s.Email)},
		{Label: "Company", Value: textValue(s.CompanyName)},
		{Label: "Company Size", Value: textValue(s.CompanySize)},
		{Label: "Shipping Regions", Value: textValue(strings.Join(s.ShippingRegions, ", "))},
	}
	if len(s.CurrentTools) > 0 {
		fields = append(fields, fieldBlock{Label: "Current Tools", Value: textValue(strings.Join(s.CurrentTools, ", "))})
	}
	fields = append(fields, fieldBlock{Label: "Main Challenge", Value: multilineValue(s.Challenge)})

	html, err := renderEmailHTML(emailDoc{
		Title:       "New Demo Request",
		Banner:      "High Priority - Schedule within 24 hours",
		Accent:      "#376db3",
		AccentEnd:   "#3dd0d1",
		Fields:      fields,
		Footer:      "This request was received at",
		GeneratedAt: at.Local().Format(footerTimeLayout),
	})
	if err != nil {
		return OutboundEmail{}, err
	}

	return OutboundEmail{
		Subject:     fmt.Sprintf("New Demo Request - %s (%s)", s.CompanyName, s.CompanySize),
		HTMLBody:    html,
		TextBody:    demoRequestEmailText(s, at),
		ReplyTo:     s.Email,
		ReplyToName: s.FirstName + " " + s.LastName,
		Tag:         "demo-request",
	}, nil
}

func demoRequestEmailText(s DemoRequestSubmission, at time.Time) string {
	var sb strings.Builder
	sb.WriteString("New Demo Request - DocSynk\n\n")
	fmt.Fprintf(&sb, "Contact Name: %s %s\n", s.FirstName, s.LastName)
	fmt.Fprintf(&sb, "Email: %s\n", s.Email)
	fmt.Fprintf(&sb, "Company: %s\n", s.CompanyName)
	fmt.Fprintf(&sb, "Company Size: %s\n", s.CompanySize)
	fmt.Fprintf(&sb, "Shipping Regions: %s\n", strings.Join(s.ShippingRegions, ", "))
	if len(s.CurrentTools) > 0 {
		fmt.Fprintf(&sb, "Current Tools: %s\n", strings.Join(s.CurrentTools, ", "))
	}
	fmt.Fprintf(&sb, "\nMain Challenge:\n%s\n\n", s.Challenge)
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "Received at: %s\n", at.Local().Format(footerTimeLayout))
	return sb.String()
}
