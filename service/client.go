package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cinepass-cli/model"
)

const (
	defaultBaseURL     = "http://localhost:3000/api"
	defaultUserAgent   = "cinepass-cli"
	defaultMaxAttempts = 3
	defaultRetryBase   = 200 * time.Millisecond
	defaultRetryCap    = 1200 * time.Millisecond
)

// Client wraps HTTP access to the cinema backend. Every request carries the
// bearer token supplied by the token source, and a 401 response triggers the
// unauthorized hook exactly once per call so the stored session can be
// invalidated globally.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	maxAttempts int
	retryBase   time.Duration
	retryCap    time.Duration

	tokenSource    func() string
	onUnauthorized func()
}

// APIError is returned when the backend responds with a non-2xx status.
// Errors carries the backend's `{errors: [{field, message}]}` envelope when
// the body parses as one.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
	Errors     []model.FieldError
}

func (e *APIError) Error() string {
	if e == nil {
		return "cinepass api error"
	}
	if len(e.Errors) > 0 {
		return e.Message()
	}
	return fmt.Sprintf("cinepass api error: %s: %s", e.Status, e.Body)
}

// Message joins the backend's field errors into one display string.
func (e *APIError) Message() string {
	if e == nil || len(e.Errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if strings.TrimSpace(fe.Message) != "" {
			parts = append(parts, fe.Message)
		}
	}
	return strings.Join(parts, ". ")
}

// IsNotFound reports whether the error represents a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized reports whether the error represents an expired or invalid
// session (401).
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// NewClient creates a new API client. If httpClient is nil, a default client
// is used; if baseURL is empty, the local development default applies.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   defaultUserAgent,
		maxAttempts: defaultMaxAttempts,
		retryBase:   defaultRetryBase,
		retryCap:    defaultRetryCap,
	}
}

// SetMaxAttempts overrides how many times an idempotent request is tried.
func (c *Client) SetMaxAttempts(n int) {
	if n > 0 {
		c.maxAttempts = n
	}
}

// SetTokenSource installs the function that yields the current bearer token.
// An empty result means the request goes out unauthenticated.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenSource = fn
}

// SetUnauthorizedHook installs the callback invoked when the backend rejects
// the session with a 401.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	return c.doJSON(ctx, http.MethodGet, endpoint, nil, out, true)
}

// postJSON never retries: search posts are harmless to repeat, but purchase
// and checkout posts are not, and the transport cannot tell them apart.
func (c *Client) postJSON(ctx context.Context, endpoint string, in any, out any) error {
	return c.doJSON(ctx, http.MethodPost, endpoint, in, out, false)
}

func (c *Client) doJSON(ctx context.Context, method string, endpoint string, in any, out any, retryable bool) error {
	maxAttempts := 1
	if retryable {
		maxAttempts = c.maxAttempts
		if maxAttempts < 1 {
			maxAttempts = 1
		}
	}

	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.tokenSource != nil {
			if token := c.tokenSource(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			if c.shouldRetryNetworkError(err) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return fmt.Errorf("request failed: %w", err)
		}

		if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
			snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
			_ = res.Body.Close()

			apiErr := &APIError{
				StatusCode: res.StatusCode,
				Status:     res.Status,
				Endpoint:   endpoint,
				Body:       strings.TrimSpace(string(snippet)),
			}
			var envelope model.ErrorResponse
			if json.Unmarshal(snippet, &envelope) == nil {
				apiErr.Errors = envelope.Errors
			}

			if res.StatusCode == http.StatusUnauthorized {
				if c.onUnauthorized != nil {
					c.onUnauthorized()
				}
				return apiErr
			}
			if c.shouldRetryStatus(res.StatusCode) && attempt < maxAttempts {
				if waitErr := c.waitRetry(ctx, attempt); waitErr != nil {
					return waitErr
				}
				continue
			}
			return apiErr
		}

		if out == nil {
			_, _ = io.Copy(io.Discard, res.Body)
			_ = res.Body.Close()
			return nil
		}

		dec := json.NewDecoder(res.Body)
		err = dec.Decode(out)
		_ = res.Body.Close()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode response from %s: %w", endpoint, err)
		}
		return nil
	}

	return errors.New("request failed after retries")
}

func (c *Client) shouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func (c *Client) shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) waitRetry(ctx context.Context, attempt int) error {
	delay := c.retryDelay(attempt)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	base := c.retryBase
	if base <= 0 {
		base = defaultRetryBase
	}
	cap := c.retryCap
	if cap <= 0 {
		cap = defaultRetryCap
	}

	delay := base
	for i := 1; i < attempt; i++ {
		if delay >= cap/2 {
			return cap
		}
		delay *= 2
	}
	if delay > cap {
		return cap
	}
	return delay
}
