package contact

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rlsh74/tnsystems-website/contact/handlers"
	"github.com/rlsh74/tnsystems-website/internal/middleware/ratelimit"
	platformconfig "github.com/rlsh74/tnsystems-website/internal/platform/config"
)

type ContactHandlers struct {
	ContactHandler *handlers.ContactHandler
}

// RegisterRoutes mounts POST /api/contact behind the submission limiter.
// limiterStore may be nil, in which case counters live in the limiter itself.
func RegisterRoutes(app *fiber.App, h *ContactHandlers, cfg *platformconfig.Config, limiterStore fiber.Storage) {
	group := app.Group("/api")

	if !cfg.RateLimit.Enabled {
		group.Post("/contact", h.ContactHandler.Submit)
		return
	}

	limiter := ratelimit.New(ratelimit.Config{
		Max:     cfg.RateLimit.Max,
		Window:  cfg.RateLimit.Duration,
		Storage: limiterStore,
	})
	group.Post("/contact", limiter, h.ContactHandler.Submit)
}
