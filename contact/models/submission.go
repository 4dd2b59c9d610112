// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package models

// Industry is the optional sector selected on the contact form.
type Industry string

const (
	IndustryPharma      Industry = "pharma"
	IndustryLifeScience Industry = "lifescience"
	IndustryMedicine    Industry = "medicine"
	IndustryFintech     Industry = "fintech"
	IndustryOther       Industry = "other"
)

// Industries lists every accepted industry value in form order.
var Industries = []Industry{
	IndustryPharma,
	IndustryLifeScience,
	IndustryMedicine,
	IndustryFintech,
	IndustryOther,
}

// IsValid reports whether i is one of the five accepted values.
func (i Industry) IsValid() bool {
	for _, v := range Industries {
		if i == v {
			return true
		}
	}
	return false
}

// Label is the human-readable name shown in the form's industry select.
func (i Industry) Label() string {
	switch i {
	case IndustryPharma:
		return "Pharmaceutical"
	case IndustryLifeScience:
		return "Life Science"
	case IndustryMedicine:
		return "Medicine"
	case IndustryFintech:
		return "Fintech"
	case IndustryOther:
		return "Other"
	}
	return string(i)
}

// Field limits
const (
	NameMaxLength       = 100
	CompanyMaxLength    = 100
	MessageMinLength    = 10
	MessageMaxLength    = 1000
	FieldLocationBody   = "body"
	FieldErrorTypeField = "field"
)

// ContactRequest is the raw body of POST /api/contact.
type ContactRequest struct {
	Name     string `json:"name" schema:"name"`
	Email    string `json:"email" schema:"email"`
	Company  string `json:"company,omitempty" schema:"company"`
	Industry string `json:"industry,omitempty" schema:"industry"`
	Message  string `json:"message" schema:"message"`
}

// ContactSubmission is a validated contact form payload. It lives for one request.
type ContactSubmission struct {
	Name     string
	Email    string
	Company  string   // empty when not provided
	Industry Industry // empty when not specified
	Message  string
}

// FieldError describes one violated field constraint.
type FieldError struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Message  string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// SuccessResponse is returned when both emails were sent.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
