package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rlsh74/tnsystems-website/contact/models"
)

// ContactPath is the submission endpoint relative to the site origin.
const ContactPath = "/api/contact"

// SubmitResult is the decoded response of a submission.
type SubmitResult struct {
	StatusCode  int
	Success     bool
	Message     string
	FieldErrors []models.FieldError
}

// RateLimited reports whether the server refused the submission for exceeding the limit.
func (r *SubmitResult) RateLimited() bool {
	return r.StatusCode == http.StatusTooManyRequests
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors"`
}

// ContactClient posts the contact form as JSON.
type ContactClient struct {
	baseURL string
	http    *http.Client
}

// NewContactClient targets baseURL ("" for same origin). A nil client uses http.DefaultClient.
func NewContactClient(baseURL string, client *http.Client) *ContactClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &ContactClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    client,
	}
}

// Submit sends the form. Any response with a JSON envelope yields a result,
// whatever its status; transport and decoding failures are errors.
func (c *ContactClient) Submit(ctx context.Context, f FormData) (*SubmitResult, error) {
	body, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ContactPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send contact form: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	return &SubmitResult{
		StatusCode:  resp.StatusCode,
		Success:     env.Success && resp.StatusCode < http.StatusBadRequest,
		Message:     env.Message,
		FieldErrors: env.Errors,
	}, nil
}
