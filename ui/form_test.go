package ui

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlsh74/tnsystems-website/contact/models"
)

func filledForm() FormData {
	return FormData{
		Name:     "Ada",
		Email:    "ada@example.com",
		Industry: "fintech",
		Message:  "Hello from the form",
	}
}

func TestPreValidate(t *testing.T) {
	f := filledForm()
	assert.Empty(t, PreValidate(f))

	missing := f
	missing.Message = ""
	assert.Equal(t, MsgRequiredFields, PreValidate(missing))

	bad := f
	bad.Email = "ada@example"
	assert.Equal(t, MsgInvalidEmail, PreValidate(bad))

	// Short messages are left for the server to reject.
	short := f
	short.Message = "hi"
	assert.Empty(t, PreValidate(short))
}

func TestSubmitRequested(t *testing.T) {
	u, ok := State{}.SubmitRequested(filledForm())
	require.True(t, ok)
	assert.True(t, u.State.Submitting)
	assert.Equal(t, SubmitLabelSending, u.State.SubmitButtonLabel())
	assert.Nil(t, u.State.Notification)

	_, again := u.State.SubmitRequested(filledForm())
	assert.False(t, again, "no second submit while one is in flight")

	bad := filledForm()
	bad.Name = ""
	u, ok = State{}.SubmitRequested(bad)
	require.False(t, ok)
	assert.False(t, u.State.Submitting)
	require.NotNil(t, u.State.Notification)
	assert.Equal(t, MsgRequiredFields, u.State.Notification.Message)
	assert.Equal(t, ToastError, u.State.Notification.Kind)
}

func TestSubmitFinished_Success(t *testing.T) {
	s := State{Submitting: true}
	u := s.SubmitFinished(filledForm(), &SubmitResult{StatusCode: http.StatusOK, Success: true, Message: MsgSubmitted}, nil)

	assert.False(t, u.State.Submitting)
	assert.Equal(t, SubmitLabel, u.State.SubmitButtonLabel())
	assert.True(t, u.ResetForm)
	require.NotNil(t, u.State.Notification)
	assert.Equal(t, ToastSuccess, u.State.Notification.Kind)
	assert.Equal(t, MsgSubmitted, u.State.Notification.Message)
	require.Len(t, u.Events, 1)
	assert.Equal(t, EventFormSubmission, u.Events[0].Name)
	assert.Equal(t, "fintech", u.Events[0].Props["user_industry"])
}

func TestSubmitFinished_SuccessWithoutIndustry(t *testing.T) {
	f := filledForm()
	f.Industry = ""
	u := State{Submitting: true}.SubmitFinished(f, &SubmitResult{StatusCode: http.StatusOK, Success: true}, nil)
	assert.Equal(t, "not_specified", u.Events[0].Props["user_industry"])
	assert.Equal(t, MsgSubmitted, u.State.Notification.Message)
}

func TestSubmitFinished_FieldErrorsAreShown(t *testing.T) {
	res := &SubmitResult{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		FieldErrors: []models.FieldError{
			{Path: "message", Message: "Message must be between 10 and 1000 characters"},
			{Path: "industry", Message: "Invalid industry selection"},
		},
	}
	u := State{Submitting: true}.SubmitFinished(filledForm(), res, nil)

	assert.False(t, u.ResetForm)
	assert.Equal(t, ToastError, u.State.Notification.Kind)
	assert.Equal(t, "Message must be between 10 and 1000 characters. Invalid industry selection.", u.State.Notification.Message)
	assert.Equal(t, map[string]string{
		"message":  "Message must be between 10 and 1000 characters",
		"industry": "Invalid industry selection",
	}, u.State.FieldErrors)

	// A fresh attempt clears the inline errors.
	next, ok := u.State.SubmitRequested(filledForm())
	require.True(t, ok)
	assert.Nil(t, next.State.FieldErrors)
}

func TestSubmitFinished_Failures(t *testing.T) {
	tests := []struct {
		name    string
		res     *SubmitResult
		err     error
		message string
	}{
		{"network error", nil, errors.New("offline"), MsgGenericError},
		{"server error", &SubmitResult{StatusCode: 500, Message: MsgGenericError}, nil, MsgGenericError},
		{"unexpected failure body", &SubmitResult{StatusCode: 500, Message: "Internal server error"}, nil, MsgGenericError},
		{"rate limited", &SubmitResult{StatusCode: 429, Message: "Too many contact form submissions, please try again later."}, nil, "Too many contact form submissions, please try again later."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := State{Submitting: true}.SubmitFinished(filledForm(), tt.res, tt.err)
			assert.False(t, u.State.Submitting)
			assert.False(t, u.ResetForm)
			assert.Empty(t, u.Events)
			require.NotNil(t, u.State.Notification)
			assert.Equal(t, ToastError, u.State.Notification.Kind)
			assert.Equal(t, tt.message, u.State.Notification.Message)
		})
	}
}

func TestFocusBlur(t *testing.T) {
	s := State{}.Focus("email").State
	assert.Equal(t, "email", s.FocusedField)
	assert.Equal(t, "email", s.Blur("name").State.FocusedField)
	assert.Empty(t, s.Blur("email").State.FocusedField)
}
