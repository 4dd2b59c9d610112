// Package compose renders the two contact emails from a validated submission.
// It performs no I/O; the results are handed to an email.Sender by the service.
package compose

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/rlsh74/tnsystems-website/contact/models"
	"github.com/rlsh74/tnsystems-website/internal/platform/email"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	notificationTemplate   = "notification.html"
	acknowledgmentTemplate = "acknowledgment.html"

	companyPlaceholder  = "Not provided"
	industryPlaceholder = "Not specified"
)

// Addresses holds the fixed parties and branding of outgoing mail.
type Addresses struct {
	From         string // sender of both emails
	CompanyEmail string // operator inbox receiving notifications
	OrgName      string
	Website      string
}

// Messages is the pair of emails produced for one submission.
type Messages struct {
	Notification   email.Message // to the operator inbox
	Acknowledgment email.Message // auto-reply to the submitter
}

type templateData struct {
	Name         string
	Email        string
	Company      string
	Industry     string
	MessageHTML  template.HTML
	OrgName      string
	Website      string
	WebsiteLabel string
}

// MessageHTML escapes text and turns line breaks into <br>.
func MessageHTML(text string) template.HTML {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	escaped := template.HTMLEscapeString(text)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Compose renders the operator notification and the submitter acknowledgment.
func Compose(sub models.ContactSubmission, addr Addresses) (Messages, error) {
	data := templateData{
		Name:         sub.Name,
		Email:        sub.Email,
		Company:      orDefault(sub.Company, companyPlaceholder),
		Industry:     orDefault(string(sub.Industry), industryPlaceholder),
		MessageHTML:  MessageHTML(sub.Message),
		OrgName:      addr.OrgName,
		Website:      addr.Website,
		WebsiteLabel: websiteLabel(addr.Website),
	}

	notificationHTML, err := render(notificationTemplate, data)
	if err != nil {
		return Messages{}, err
	}
	acknowledgmentHTML, err := render(acknowledgmentTemplate, data)
	if err != nil {
		return Messages{}, err
	}

	return Messages{
		Notification: email.Message{
			From:    addr.From,
			To:      []string{addr.CompanyEmail},
			ReplyTo: sub.Email,
			Subject: "New Contact Form Submission - " + headerSafe(sub.Name),
			HTML:    notificationHTML,
			Text:    notificationText(data, sub.Message),
		},
		Acknowledgment: email.Message{
			From:    addr.From,
			To:      []string{sub.Email},
			Subject: fmt.Sprintf("Thank you for contacting %s", addr.OrgName),
			HTML:    acknowledgmentHTML,
			Text:    acknowledgmentText(data, sub.Message),
		},
	}, nil
}

func render(name string, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func notificationText(d templateData, message string) string {
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	b.WriteString("Name: " + d.Name + "\n")
	b.WriteString("Email: " + d.Email + "\n")
	b.WriteString("Company: " + d.Company + "\n")
	b.WriteString("Industry: " + d.Industry + "\n\n")
	b.WriteString("Message:\n" + message + "\n")
	return b.String()
}

func acknowledgmentText(d templateData, message string) string {
	var b strings.Builder
	b.WriteString("Thank you for your message, " + d.Name + "!\n\n")
	b.WriteString("We have received your message and will get back to you as soon as possible.\n\n")
	b.WriteString("Your message:\n" + message + "\n\n")
	b.WriteString("Best regards,\n" + d.OrgName + " Team\n")
	return b.String()
}

// headerSafe keeps user input from breaking out of the Subject header.
func headerSafe(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func websiteLabel(url string) string {
	label := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	return strings.TrimSuffix(label, "/")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
