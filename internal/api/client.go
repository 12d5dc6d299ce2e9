// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// Client talks to the investment calculator backend. All endpoints are JSON
// POSTs under the configured base path.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a backend client. baseURL already includes the /api
// path segment.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Authenticate verifies a phone number and PIN. A contact that exists but
// fails the PIN check comes back with Authenticated == false rather than an
// error; errors are transport or server failures.
func (c *Client) Authenticate(ctx context.Context, phoneNumber, pin string) (Contact, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/contacts/authenticate", AuthRequest{PhoneNumber: phoneNumber, PIN: pin}, &resp); err != nil {
		return Contact{}, err
	}
	return resp.Data, nil
}

// CreateCalculation submits a completed projection. Failure here does not
// invalidate the local result; the caller keeps showing it.
func (c *Client) CreateCalculation(ctx context.Context, sub CalculationSubmission) error {
	return c.post(ctx, "/calculations", sub, nil)
}

// CreateQuestionnaire submits the qualifying questionnaire answers.
func (c *Client) CreateQuestionnaire(ctx context.Context, sub QuestionnaireSubmission) error {
	return c.post(ctx, "/questionnaires", sub, nil)
}

// CreateFeedback submits a per-video feedback survey.
func (c *Client) CreateFeedback(ctx context.Context, sub FeedbackSubmission) error {
	return c.post(ctx, "/feedbacks", sub, nil)
}

// Ping probes the backend with exponential backoff. Used once at startup so
// an unreachable backend surfaces before the user fills out a form.
// User-triggered submissions are never retried automatically.
func (c *Client) Ping(ctx context.Context, maxTries uint) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second

	notify := func(err error, duration time.Duration) {
		c.logger.Info("Backend unreachable, retrying", zap.Error(err), zap.Duration("backoff", duration))
	}

	operation := func() (struct{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		defer func() { _ = resp.Body.Close() }()
		_, _ = io.Copy(io.Discard, resp.Body)
		// Any HTTP response means the backend is up; auth and routing
		// errors are fine at probe time.
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(maxTries),
		backoff.WithNotify(notify))
	return err
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("POST", zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Backend rejected request",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
