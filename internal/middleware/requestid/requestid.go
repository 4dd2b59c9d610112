package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofrs/uuid"

	"github.com/rlsh74/tnsystems-website/internal/pkg/log"
	"github.com/rlsh74/tnsystems-website/internal/types"
)

// ContextKeyRequestID is the key used to store request ID in Fiber locals
const ContextKeyRequestID = "request_id"

// maxIncomingLength bounds client-supplied ids before they reach the logs
const maxIncomingLength = 128

// New creates a middleware that generates or reuses the X-Request-ID header.
// The id is stored in Fiber locals and in the user context read by the logger.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(types.HeaderRequestID)

		if requestID == "" || len(requestID) > maxIncomingLength {
			id, err := uuid.NewV4()
			if err != nil {
				log.Warn("requestid: uuid generation failed: %v", err)
				requestID = utils.UUID()
			} else {
				requestID = id.String()
			}
		}

		c.Locals(ContextKeyRequestID, requestID)
		c.SetUserContext(log.WithRequestID(c.UserContext(), requestID))
		c.Set(types.HeaderRequestID, requestID)

		return c.Next()
	}
}

// GetRequestID retrieves the request ID from Fiber context
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
