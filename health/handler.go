package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// StatusOK is the only status reported; the process answering is the check.
const StatusOK = "OK"

// timestampLayout is RFC 3339 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Response is the body of GET /api/health.
type Response struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"` // seconds since start
}

type HealthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

// NewHealthHandler measures uptime from startedAt using now as the clock.
// A nil clock means time.Now.
func NewHealthHandler(startedAt time.Time, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{startedAt: startedAt, now: now}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	now := h.now()
	return c.JSON(Response{
		Status:    StatusOK,
		Timestamp: now.UTC().Format(timestampLayout),
		Uptime:    now.Sub(h.startedAt).Seconds(),
	})
}

func RegisterRoutes(app *fiber.App, h *HealthHandler) {
	app.Get("/api/health", h.Check)
}
