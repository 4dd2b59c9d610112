package server

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rlsh74/tnsystems-website/contact"
	"github.com/rlsh74/tnsystems-website/contact/handlers"
	"github.com/rlsh74/tnsystems-website/contact/services"
	"github.com/rlsh74/tnsystems-website/health"
	"github.com/rlsh74/tnsystems-website/internal/middleware/requestid"
	"github.com/rlsh74/tnsystems-website/internal/pkg/log"
	platformconfig "github.com/rlsh74/tnsystems-website/internal/platform/config"
	platformemail "github.com/rlsh74/tnsystems-website/internal/platform/email"
)

// Response messages for requests that never reach a handler.
const (
	MsgNotFound      = "Endpoint not found"
	MsgInternalError = "Internal server error"
)

// ContentSecurityPolicy allows the site's own assets, Google Fonts and the
// WebAssembly client.
var ContentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com",
	"font-src 'self' https://fonts.gstatic.com",
	"script-src 'self' 'unsafe-inline' 'wasm-unsafe-eval'",
	"img-src 'self' data: https:",
	"connect-src 'self'",
}, "; ")

// Deps are the collaborators the server does not build itself.
type Deps struct {
	Sender       platformemail.Sender
	LimiterStore fiber.Storage // nil keeps limiter counters in process
	StartedAt    time.Time
	Clock        func() time.Time // nil means time.Now
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// New assembles the Fiber application: middleware, API routes, static site and 404 fallback.
func New(cfg *platformconfig.Config, deps Deps) *fiber.App {
	if deps.StartedAt.IsZero() {
		deps.StartedAt = time.Now()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.OrgName,
		BodyLimit:             cfg.Server.BodyLimitBytes,
		ProxyHeader:           cfg.Server.ProxyHeader,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Server.Debug}))
	app.Use(requestid.New())
	app.Use(helmet.New(helmet.Config{
		ContentSecurityPolicy:     ContentSecurityPolicy,
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.FrontendURL,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		ExposeHeaders:    "X-Request-ID, X-RateLimit-Limit, X-RateLimit-Remaining, X-RateLimit-Reset, Retry-After",
	}))

	health.RegisterRoutes(app, health.NewHealthHandler(deps.StartedAt, deps.Clock))

	contactService := services.NewService(deps.Sender, services.AddressesFromConfig(cfg))
	contact.RegisterRoutes(app, &contact.ContactHandlers{
		ContactHandler: handlers.NewContactHandler(contactService),
	}, cfg, deps.LimiterStore)

	if cfg.Server.StaticDir != "" {
		app.Static("/public", filepath.Join(cfg.Server.StaticDir, "public"))
		app.Static("/", cfg.Server.StaticDir)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(envelope{Success: false, Message: MsgNotFound})
	})

	return app
}

// errorHandler turns errors escaping handlers into the JSON envelope.
// Client errors raised by Fiber keep their status; anything else is a 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound:
			return c.Status(fiber.StatusNotFound).JSON(envelope{Success: false, Message: MsgNotFound})
		case fe.Code < fiber.StatusInternalServerError:
			return c.Status(fe.Code).JSON(envelope{Success: false, Message: fe.Message})
		}
	}

	log.ErrorWithContext(c.UserContext(), "Global error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(envelope{Success: false, Message: MsgInternalError})
}
