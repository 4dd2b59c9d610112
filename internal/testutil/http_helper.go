package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/rlsh74/tnsystems-website/internal/types"
)

// HTTPHelper provides a fluent way to make requests against a Fiber app in tests.
type HTTPHelper struct {
	t   *testing.T
	app *fiber.App
}

// NewHTTPHelper creates a new test helper for a given Fiber app.
func NewHTTPHelper(t *testing.T, app *fiber.App) *HTTPHelper {
	require.NotNil(t, app, "Fiber app provided to HTTPHelper cannot be nil")
	return &HTTPHelper{
		t:   t,
		app: app,
	}
}

// Request represents a test request under construction.
type Request struct {
	helper     *HTTPHelper
	method     string
	path       string
	bodyReader io.Reader
	headers    http.Header
}

// NewRequest begins building a request. Non-byte, non-string bodies are sent as JSON.
func (h *HTTPHelper) NewRequest(method, path string, body interface{}) *Request {
	var bodyBytes []byte
	if body != nil {
		switch b := body.(type) {
		case []byte:
			bodyBytes = b
		case string:
			bodyBytes = []byte(b)
		default:
			jsonBytes, err := json.Marshal(body)
			require.NoError(h.t, err, "Failed to marshal request body to JSON")
			bodyBytes = jsonBytes
		}
	}

	req := &Request{
		helper:     h,
		method:     method,
		path:       path,
		bodyReader: bytes.NewReader(bodyBytes),
		headers:    make(http.Header),
	}

	if body != nil {
		req.WithHeader(types.HeaderContentType, types.MIMEApplicationJSON)
	}

	return req
}

// NewFormRequest builds an application/x-www-form-urlencoded request.
func (h *HTTPHelper) NewFormRequest(method, path string, form url.Values) *Request {
	req := &Request{
		helper:     h,
		method:     method,
		path:       path,
		bodyReader: bytes.NewReader([]byte(form.Encode())),
		headers:    make(http.Header),
	}
	req.WithHeader(types.HeaderContentType, types.MIMEApplicationForm)
	return req
}

// WithHeader sets a header on the request.
func (r *Request) WithHeader(key, value string) *Request {
	r.headers.Set(key, value)
	return r
}

// FromIP makes the request appear to come from ip when the app trusts X-Real-IP.
func (r *Request) FromIP(ip string) *Request {
	return r.WithHeader(types.HeaderRealIP, ip)
}

// Send executes the request and returns the response.
func (r *Request) Send() *http.Response {
	req := httptest.NewRequest(r.method, r.path, r.bodyReader)
	req.Header = r.headers

	resp, err := r.helper.app.Test(req, int(10*time.Second.Milliseconds()))
	require.NoError(r.helper.t, err, "app.Test should not return an error")
	require.NotNil(r.helper.t, resp, "app.Test response should not be nil")

	return resp
}

// DecodeJSON reads the response body into v and closes it.
func DecodeJSON(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v), "body: %s", string(body))
}
