package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rlsh74/tnsystems-website/contact/models"
)

// Error messages shown to the submitter, one per field.
const (
	MsgName     = "Name is required and must be less than 100 characters"
	MsgEmail    = "Please provide a valid email address"
	MsgCompany  = "Company name must be less than 100 characters"
	MsgIndustry = "Invalid industry selection"
	MsgMessage  = "Message must be between 10 and 1000 characters"
)

const emailMaxLength = 254

// emailRegex requires local@domain.tld with no whitespace and a single '@'.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like local@domain.tld and parses as a bare address.
func IsValidEmail(s string) bool {
	if s == "" || len(s) > emailMaxLength || !emailRegex.MatchString(s) {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateContactRequest checks every field and returns all violations at once.
// On success the returned submission holds trimmed values and a normalized email.
func ValidateContactRequest(req *models.ContactRequest) (*models.ContactSubmission, []models.FieldError) {
	if req == nil {
		req = &models.ContactRequest{}
	}

	var errs []models.FieldError
	fail := func(path, value, msg string) {
		errs = append(errs, models.FieldError{
			Type:     models.FieldErrorTypeField,
			Value:    value,
			Message:  msg,
			Path:     path,
			Location: models.FieldLocationBody,
		})
	}

	name := strings.TrimSpace(req.Name)
	if n := utf8.RuneCountInString(name); n < 1 || n > models.NameMaxLength {
		fail("name", name, MsgName)
	}

	email := strings.TrimSpace(req.Email)
	if !IsValidEmail(email) {
		fail("email", req.Email, MsgEmail)
	}

	company := strings.TrimSpace(req.Company)
	if utf8.RuneCountInString(company) > models.CompanyMaxLength {
		fail("company", company, MsgCompany)
	}

	industry := models.Industry(strings.TrimSpace(req.Industry))
	if industry != "" && !industry.IsValid() {
		fail("industry", req.Industry, MsgIndustry)
	}

	message := strings.TrimSpace(req.Message)
	if n := utf8.RuneCountInString(message); n < models.MessageMinLength || n > models.MessageMaxLength {
		fail("message", message, MsgMessage)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.ContactSubmission{
		Name:     name,
		Email:    NormalizeEmail(email),
		Company:  company,
		Industry: industry,
		Message:  message,
	}, nil
}
