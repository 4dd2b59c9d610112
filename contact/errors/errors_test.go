package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactError_MatchesSentinels(t *testing.T) {
	cause := errors.New("dial tcp: refused")

	err := fmt.Errorf("submit: %w", WrapDeliveryError("notification", cause))
	assert.True(t, errors.Is(err, ErrEmailDelivery))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInvalidRequest))
	assert.Equal(t, "submit: EMAIL_DELIVERY_FAILED: send notification (caused by: dial tcp: refused)", err.Error())

	assert.True(t, errors.Is(WrapRequestError(cause), ErrInvalidRequest))
	assert.True(t, errors.Is(WrapComposeError(cause), ErrComposeFailed))
}

func TestContactError_WithoutCause(t *testing.T) {
	err := NewContactError(CodeValidationFailed, "bad input", nil)
	assert.Equal(t, "VALIDATION_FAILED: bad input", err.Error())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Nil(t, errors.Unwrap(err))
}
