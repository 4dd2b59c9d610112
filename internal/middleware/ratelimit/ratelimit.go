// Package ratelimit limits contact form submissions per client address.
package ratelimit

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/rlsh74/tnsystems-website/internal/pkg/log"
)

// LimitExceededMessage is the fixed rejection message for contact submissions.
const LimitExceededMessage = "Too many contact form submissions, please try again later."

// CodeRateLimitExceeded identifies rate limit rejections in response bodies
const CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"

// Config holds the configuration for rate limiting middleware
type Config struct {
	// Max requests per window (default 5)
	Max int

	// Window duration (default 15 minutes)
	Window time.Duration

	// Storage holds the counters. Nil uses the limiter's own in-process map.
	Storage fiber.Storage

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// Custom key generator (optional - uses client IP if not provided)
	KeyGenerator func(c *fiber.Ctx) string

	// LimitReached defines the response when rate limit is exceeded
	LimitReached func(c *fiber.Ctx) error
}

// LimitResponse is the body returned with 429 responses
type LimitResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Error      string `json:"error"`
	Code       string `json:"code"`
	RetryAfter int    `json:"retryAfter"`
}

// DefaultConfig returns 5 requests per 15 minutes per client address.
func DefaultConfig() Config {
	return Config{
		Max:    5,
		Window: 15 * time.Minute,
	}
}

// configDefault sets default configuration values
func configDefault(config Config) Config {
	defaults := DefaultConfig()
	if config.Max <= 0 {
		config.Max = defaults.Max
	}
	if config.Window <= 0 {
		config.Window = defaults.Window
	}

	if config.KeyGenerator == nil {
		config.KeyGenerator = func(c *fiber.Ctx) string {
			return "contact:" + c.IP()
		}
	}

	if config.LimitReached == nil {
		window := config.Window
		config.LimitReached = func(c *fiber.Ctx) error {
			log.WarnWithContext(c.UserContext(), "[RateLimit] Contact form limit exceeded from IP: %s", c.IP())

			return c.Status(fiber.StatusTooManyRequests).JSON(LimitResponse{
				Success:    false,
				Message:    LimitExceededMessage,
				Error:      LimitExceededMessage,
				Code:       CodeRateLimitExceeded,
				RetryAfter: int(window.Seconds()),
			})
		}
	}

	return config
}

// New creates a new rate limiting middleware handler.
// Counting is a fixed window per key; the limiter emits X-RateLimit-* and Retry-After headers.
func New(config Config) fiber.Handler {
	cfg := configDefault(config)

	return limiter.New(limiter.Config{
		Max:               cfg.Max,
		Expiration:        cfg.Window,
		KeyGenerator:      cfg.KeyGenerator,
		LimitReached:      cfg.LimitReached,
		Next:              cfg.Next,
		Storage:           cfg.Storage,
		LimiterMiddleware: limiter.FixedWindow{},
	})
}
