package handlers

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"

	contactErrors "github.com/rlsh74/tnsystems-website/contact/errors"
	"github.com/rlsh74/tnsystems-website/contact/models"
	"github.com/rlsh74/tnsystems-website/contact/services"
	"github.com/rlsh74/tnsystems-website/contact/validation"
	"github.com/rlsh74/tnsystems-website/internal/pkg/log"
	"github.com/rlsh74/tnsystems-website/internal/types"
)

type ContactHandler struct {
	contactService services.ContactService
	formDecoder    *schema.Decoder
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &ContactHandler{
		contactService: contactService,
		formDecoder:    decoder,
	}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	req, err := h.decode(c)
	if err != nil {
		log.WarnWithContext(c.UserContext(), "[contact] %v", err)
		return contactErrors.HandleInvalidRequestError(c)
	}

	sub, fieldErrors := validation.ValidateContactRequest(req)
	if len(fieldErrors) > 0 {
		log.DebugWithContext(c.UserContext(), "[contact] rejected submission with %d field errors", len(fieldErrors))
		return contactErrors.HandleValidationError(c, fieldErrors)
	}

	if err := h.contactService.Submit(c.UserContext(), sub); err != nil {
		return contactErrors.HandleServiceError(c, err)
	}

	return c.JSON(models.SuccessResponse{
		Success: true,
		Message: contactErrors.MsgSubmitted,
	})
}

// decode reads a JSON or urlencoded body. Other content types and empty
// bodies yield an empty request, which then fails validation.
func (h *ContactHandler) decode(c *fiber.Ctx) (*models.ContactRequest, error) {
	req := &models.ContactRequest{}
	body := c.Body()

	switch {
	case c.Is("json"):
		if len(body) == 0 {
			return req, nil
		}
		if err := json.Unmarshal(body, req); err != nil {
			return nil, contactErrors.WrapRequestError(err)
		}
	case isForm(c):
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, contactErrors.WrapRequestError(err)
		}
		if err := h.formDecoder.Decode(req, values); err != nil {
			return nil, contactErrors.WrapRequestError(err)
		}
	}
	return req, nil
}

func isForm(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), types.MIMEApplicationForm)
}
