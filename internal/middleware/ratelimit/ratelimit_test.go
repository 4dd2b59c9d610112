package ratelimit

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlsh74/tnsystems-website/internal/cache"
	"github.com/rlsh74/tnsystems-website/internal/types"
)

func newTestApp(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{ProxyHeader: types.HeaderRealIP})
	app.Use(New(cfg))
	app.Post("/test", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func post(t *testing.T, app *fiber.App, ip string) (int, []byte, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/test", strings.NewReader("{}"))
	req.Header.Set(types.HeaderContentType, types.MIMEApplicationJSON)
	req.Header.Set(types.HeaderRealIP, ip)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	headers := map[string]string{
		"limit":      resp.Header.Get("X-RateLimit-Limit"),
		"remaining":  resp.Header.Get("X-RateLimit-Remaining"),
		"retryAfter": resp.Header.Get(fiber.HeaderRetryAfter),
	}
	return resp.StatusCode, body, headers
}

func TestRateLimit_FifthAcceptedSixthRejected(t *testing.T) {
	app := newTestApp(DefaultConfig())

	for i := 0; i < 5; i++ {
		status, _, _ := post(t, app, "192.168.1.1")
		assert.Equal(t, 200, status, "request %d should pass", i+1)
	}

	status, body, headers := post(t, app, "192.168.1.1")
	assert.Equal(t, 429, status)
	assert.NotEmpty(t, headers["retryAfter"])

	var resp LimitResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, LimitExceededMessage, resp.Message)
	assert.Equal(t, LimitExceededMessage, resp.Error)
	assert.Equal(t, CodeRateLimitExceeded, resp.Code)
	assert.Equal(t, 900, resp.RetryAfter)
}

func TestRateLimit_StandardHeaders(t *testing.T) {
	app := newTestApp(DefaultConfig())

	status, _, headers := post(t, app, "10.0.0.1")
	assert.Equal(t, 200, status)
	assert.Equal(t, "5", headers["limit"])
	assert.Equal(t, "4", headers["remaining"])
}

func TestRateLimit_DifferentIPs_IndependentLimits(t *testing.T) {
	app := newTestApp(DefaultConfig())

	for i := 0; i < 5; i++ {
		status, _, _ := post(t, app, "192.168.1.1")
		require.Equal(t, 200, status)
	}
	status, _, _ := post(t, app, "192.168.1.1")
	require.Equal(t, 429, status)

	status, _, _ = post(t, app, "192.168.1.2")
	assert.Equal(t, 200, status)
}

func TestRateLimit_WindowExpiry(t *testing.T) {
	app := newTestApp(Config{Max: 1, Window: time.Second})

	status, _, _ := post(t, app, "172.16.0.1")
	require.Equal(t, 200, status)
	status, _, _ = post(t, app, "172.16.0.1")
	require.Equal(t, 429, status)

	// fiber's limiter tracks time at second granularity
	time.Sleep(2500 * time.Millisecond)

	status, _, _ = post(t, app, "172.16.0.1")
	assert.Equal(t, 200, status)
}

func TestRateLimit_InjectedStorageHoldsCounters(t *testing.T) {
	store := cache.NewMemoryStorage(0)
	defer store.Close()

	app := newTestApp(Config{Max: 2, Window: time.Minute, Storage: store})

	status, _, _ := post(t, app, "192.168.1.9")
	require.Equal(t, 200, status)
	assert.Greater(t, store.Len(), 0, "counters should live in the injected storage")

	// a second app sharing the store sees the same counters
	other := newTestApp(Config{Max: 2, Window: time.Minute, Storage: store})
	status, _, _ = post(t, other, "192.168.1.9")
	require.Equal(t, 200, status)
	status, _, _ = post(t, app, "192.168.1.9")
	assert.Equal(t, 429, status)
}

func TestRateLimit_NextSkipsLimiter(t *testing.T) {
	app := newTestApp(Config{Max: 1, Next: func(c *fiber.Ctx) bool { return true }})

	for i := 0; i < 3; i++ {
		status, _, _ := post(t, app, "192.168.1.1")
		assert.Equal(t, 200, status)
	}
}

func TestRateLimit_DefaultConfiguration(t *testing.T) {
	defaults := DefaultConfig()
	assert.Equal(t, 5, defaults.Max)
	assert.Equal(t, 15*time.Minute, defaults.Window)

	filled := configDefault(Config{})
	assert.Equal(t, 5, filled.Max)
	assert.NotNil(t, filled.KeyGenerator)
	assert.NotNil(t, filled.LimitReached)
}
