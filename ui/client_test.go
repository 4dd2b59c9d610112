package ui

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, status int, body string, seen *FormData) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ContactPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if seen != nil {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestContactClient_Success(t *testing.T) {
	var seen FormData
	srv := newTestBackend(t, http.StatusOK, `{"success":true,"message":"Thank you"}`, &seen)

	res, err := NewContactClient(srv.URL+"/", srv.Client()).Submit(context.Background(), filledForm())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Thank you", res.Message)
	assert.Equal(t, filledForm(), seen)
}

func TestContactClient_ValidationErrors(t *testing.T) {
	srv := newTestBackend(t, http.StatusBadRequest, `{
		"success": false,
		"message": "Validation failed",
		"errors": [{"type":"field","value":"x","msg":"Please provide a valid email address","path":"email","location":"body"}]
	}`, nil)

	res, err := NewContactClient(srv.URL, nil).Submit(context.Background(), filledForm())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Len(t, res.FieldErrors, 1)
	assert.Equal(t, "email", res.FieldErrors[0].Path)
	assert.Equal(t, "Please provide a valid email address", res.FieldErrors[0].Message)
}

func TestContactClient_RateLimited(t *testing.T) {
	srv := newTestBackend(t, http.StatusTooManyRequests, `{"success":false,"message":"Too many","error":"Too many"}`, nil)

	res, err := NewContactClient(srv.URL, nil).Submit(context.Background(), filledForm())
	require.NoError(t, err)
	assert.True(t, res.RateLimited())
	assert.Equal(t, "Too many", res.Message)
}

func TestContactClient_SuccessFlagNeedsOKStatus(t *testing.T) {
	srv := newTestBackend(t, http.StatusInternalServerError, `{"success":true}`, nil)

	res, err := NewContactClient(srv.URL, nil).Submit(context.Background(), filledForm())
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestContactClient_NonJSONResponse(t *testing.T) {
	srv := newTestBackend(t, http.StatusBadGateway, `<html>bad gateway</html>`, nil)

	_, err := NewContactClient(srv.URL, nil).Submit(context.Background(), filledForm())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestContactClient_Unreachable(t *testing.T) {
	srv := newTestBackend(t, http.StatusOK, `{}`, nil)
	url := srv.URL
	srv.Close()

	_, err := NewContactClient(url, nil).Submit(context.Background(), filledForm())
	require.Error(t, err)
}
