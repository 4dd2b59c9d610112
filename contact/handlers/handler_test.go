package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contactErrors "github.com/rlsh74/tnsystems-website/contact/errors"
	"github.com/rlsh74/tnsystems-website/contact/models"
	"github.com/rlsh74/tnsystems-website/internal/testutil"
)

type mockContactService struct {
	mock.Mock
}

func (m *mockContactService) Submit(ctx context.Context, sub *models.ContactSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func setupApp(t *testing.T, svc *mockContactService) *testutil.HTTPHelper {
	app := fiber.New()
	app.Post("/api/contact", NewContactHandler(svc).Submit)
	return testutil.NewHTTPHelper(t, app)
}

func TestSubmit_JSON(t *testing.T) {
	svc := new(mockContactService)
	svc.On("Submit", mock.Anything, &models.ContactSubmission{
		Name:     "Ada",
		Email:    "ada@example.com",
		Industry: models.IndustryPharma,
		Message:  "Tell me more please",
	}).Return(nil).Once()

	resp := setupApp(t, svc).NewRequest(http.MethodPost, "/api/contact", map[string]string{
		"name":     " Ada ",
		"email":    "ADA@example.com",
		"industry": "pharma",
		"message":  "Tell me more please",
	}).Send()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body models.SuccessResponse
	testutil.DecodeJSON(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, contactErrors.MsgSubmitted, body.Message)
	svc.AssertExpectations(t)
}

func TestSubmit_FormIgnoresUnknownFields(t *testing.T) {
	svc := new(mockContactService)
	svc.On("Submit", mock.Anything, mock.MatchedBy(func(s *models.ContactSubmission) bool {
		return s.Name == "Bob" && s.Company == "Acme"
	})).Return(nil).Once()

	form := url.Values{
		"name":    {"Bob"},
		"email":   {"bob@example.com"},
		"company": {"Acme"},
		"message": {"Ten chars or more"},
		"website": {"spam"},
	}
	resp := setupApp(t, svc).NewFormRequest(http.MethodPost, "/api/contact", form).Send()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestSubmit_ValidationErrorsSkipService(t *testing.T) {
	svc := new(mockContactService)

	resp := setupApp(t, svc).NewRequest(http.MethodPost, "/api/contact", map[string]string{
		"name":     "Ada",
		"email":    "not-an-email",
		"industry": "retail",
		"message":  "short",
	}).Send()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body models.ErrorResponse
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, contactErrors.MsgValidationFailed, body.Message)
	require.Len(t, body.Errors, 3)
	assert.Equal(t, "email", body.Errors[0].Path)
	assert.Equal(t, "industry", body.Errors[1].Path)
	assert.Equal(t, "message", body.Errors[2].Path)
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmit_EmptyBodyFailsValidation(t *testing.T) {
	svc := new(mockContactService)

	resp := setupApp(t, svc).NewRequest(http.MethodPost, "/api/contact", nil).Send()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body models.ErrorResponse
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, contactErrors.MsgValidationFailed, body.Message)
	assert.Len(t, body.Errors, 3)
}

func TestSubmit_WrongFieldTypeIsInvalidBody(t *testing.T) {
	svc := new(mockContactService)

	resp := setupApp(t, svc).NewRequest(http.MethodPost, "/api/contact", `{"name": 42}`).Send()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body models.ErrorResponse
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, contactErrors.MsgInvalidRequest, body.Message)
	assert.Empty(t, body.Errors)
}

func TestSubmit_ServiceFailure(t *testing.T) {
	svc := new(mockContactService)
	svc.On("Submit", mock.Anything, mock.Anything).
		Return(contactErrors.WrapDeliveryError("notification", assert.AnError)).Once()

	resp := setupApp(t, svc).NewRequest(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "A long enough message",
	}).Send()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body models.ErrorResponse
	testutil.DecodeJSON(t, resp, &body)
	assert.False(t, body.Success)
	assert.Equal(t, contactErrors.MsgDeliveryFailed, body.Message)
}
