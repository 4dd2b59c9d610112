package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/rlsh74/tnsystems-website/contact/models"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrEmailDelivery    = errors.New("email delivery failed")
	ErrInvalidRequest   = errors.New("invalid request body")
	ErrComposeFailed    = errors.New("compose email failed")
)

// Messages returned to the client.
const (
	MsgValidationFailed = "Validation failed"
	MsgDeliveryFailed   = "Sorry, there was an error sending your message. Please try again."
	MsgInvalidRequest   = "Invalid request body"
	MsgInternalError    = "Internal server error"
	MsgSubmitted        = "Thank you for your message! We will get back to you soon."
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeEmailDelivery    = "EMAIL_DELIVERY_FAILED"
	CodeInvalidRequest   = "INVALID_REQUEST_BODY"
	CodeComposeFailed    = "COMPOSE_FAILED"
)

// ContactError carries a stable code and the step that failed.
type ContactError struct {
	Code    string
	Message string
	Cause   error
}

func (e *ContactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ContactError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match a ContactError against the sentinel of its code.
func (e *ContactError) Is(target error) bool {
	switch e.Code {
	case CodeEmailDelivery:
		return target == ErrEmailDelivery
	case CodeComposeFailed:
		return target == ErrComposeFailed
	case CodeInvalidRequest:
		return target == ErrInvalidRequest
	case CodeValidationFailed:
		return target == ErrValidationFailed
	}
	return false
}

func NewContactError(code, message string, cause error) *ContactError {
	return &ContactError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapDeliveryError marks a transport failure for the named email.
func WrapDeliveryError(which string, err error) *ContactError {
	return NewContactError(CodeEmailDelivery, "send "+which, err)
}

func WrapComposeError(err error) *ContactError {
	return NewContactError(CodeComposeFailed, "compose emails", err)
}

func WrapRequestError(err error) *ContactError {
	return NewContactError(CodeInvalidRequest, "decode body", err)
}

// HandleServiceError maps a submission failure to the generic 500 envelope.
// Transport details stay in the logs.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidRequest):
		return HandleInvalidRequestError(c)
	case errors.Is(err, ErrEmailDelivery), errors.Is(err, ErrComposeFailed):
		return c.Status(http.StatusInternalServerError).JSON(models.ErrorResponse{
			Success: false,
			Message: MsgDeliveryFailed,
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(models.ErrorResponse{
			Success: false,
			Message: MsgInternalError,
		})
	}
}

func HandleValidationError(c *fiber.Ctx, fieldErrors []models.FieldError) error {
	return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{
		Success: false,
		Message: MsgValidationFailed,
		Errors:  fieldErrors,
	})
}

func HandleInvalidRequestError(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{
		Success: false,
		Message: MsgInvalidRequest,
	})
}
