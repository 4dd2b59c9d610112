package ui

import (
	"regexp"
	"strings"

	"github.com/rlsh74/tnsystems-website/contact/models"
)

// Messages shown in toasts.
const (
	MsgRequiredFields = "Please fill in all required fields."
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgSubmitted      = "Thank you for your message! We will get back to you soon."
	MsgGenericError   = "Sorry, there was an error sending your message. Please try again."
)

// Submit button labels.
const (
	SubmitLabel        = "Send Message"
	SubmitLabelSending = "Sending..."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormData is the contact form as read from the page.
type FormData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Industry string `json:"industry"`
	Message  string `json:"message"`
}

// PreValidate runs the checks done before any request is made. It returns
// the toast message for the first problem, or "" when the form may be sent.
// Length limits are left to the server.
func PreValidate(f FormData) string {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return MsgRequiredFields
	}
	if !emailPattern.MatchString(f.Email) {
		return MsgInvalidEmail
	}
	return ""
}

// Focus marks the field whose wrapper gets the focused style.
func (s State) Focus(field string) Update {
	s.FocusedField = field
	return s.unchanged()
}

// Blur clears the focused style if field still holds it.
func (s State) Blur(field string) Update {
	if s.FocusedField == field {
		s.FocusedField = ""
	}
	return s.unchanged()
}

// SubmitRequested validates the form locally. When it passes the state
// enters Submitting and the caller should send the form; otherwise an
// error toast is shown and ok is false. A submit while one is in flight is ignored.
func (s State) SubmitRequested(f FormData) (u Update, ok bool) {
	if s.Submitting {
		return s.unchanged(), false
	}
	if msg := PreValidate(f); msg != "" {
		return s.ShowNotification(msg, ToastError), false
	}
	s.Submitting = true
	s.FieldErrors = nil
	return s.unchanged(), true
}

// SubmitFinished applies the outcome of a send. err covers network and
// decoding failures; res is the decoded server envelope.
func (s State) SubmitFinished(f FormData, res *SubmitResult, err error) Update {
	s.Submitting = false

	switch {
	case err != nil || res == nil:
		return s.ShowNotification(MsgGenericError, ToastError)

	case res.Success:
		s.FieldErrors = nil
		msg := res.Message
		if msg == "" {
			msg = MsgSubmitted
		}
		u := s.ShowNotification(msg, ToastSuccess)
		u.ResetForm = true
		u.Events = append(u.Events, Event{
			Name: EventFormSubmission,
			Props: map[string]string{
				"form_name":     "contact_form",
				"user_industry": industryOrDefault(f.Industry),
			},
		})
		return u

	case len(res.FieldErrors) > 0:
		s.FieldErrors = fieldErrorMap(res.FieldErrors)
		return s.ShowNotification(joinFieldMessages(res.FieldErrors), ToastError)

	case res.RateLimited():
		return s.ShowNotification(res.Message, ToastError)
	}

	return s.ShowNotification(MsgGenericError, ToastError)
}

// SubmitButtonLabel is the text of the submit button for the current state.
func (s State) SubmitButtonLabel() string {
	if s.Submitting {
		return SubmitLabelSending
	}
	return SubmitLabel
}

func industryOrDefault(industry string) string {
	if industry == "" {
		return "not_specified"
	}
	return industry
}

func fieldErrorMap(errs []models.FieldError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, seen := m[e.Path]; !seen {
			m[e.Path] = e.Message
		}
	}
	return m
}

func joinFieldMessages(errs []models.FieldError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, strings.TrimSuffix(e.Message, ".")+".")
	}
	return strings.Join(msgs, " ")
}
