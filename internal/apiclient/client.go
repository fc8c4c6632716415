package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/enjaz/internal/session"
)

const (
	// DefaultMaxRetries is the number of retries after the first attempt for
	// transient failures (HTTP >= 500 or a transport error).
	DefaultMaxRetries = 3

	// DefaultBaseDelay is the first backoff delay; it doubles per attempt.
	DefaultBaseDelay = 1000 * time.Millisecond
)

// Client executes logical requests against the remote API, hiding transient
// failures behind retry with exponential backoff. Terminal classes (401, 409,
// other 4xx, cancellation) surface immediately as typed errors.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     *zap.Logger

	maxRetries int
	baseDelay  time.Duration

	// sleep is replaced in tests to observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error

	// onAuthExpired runs after the session is cleared on a 401. The hosting
	// process decides what a "full reload" means for it.
	onAuthExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a structured logger. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRetryPolicy overrides the retry count and base backoff delay.
func WithRetryPolicy(maxRetries int, baseDelay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseDelay = baseDelay
	}
}

// WithAuthExpiredHook registers the callback invoked after a 401 clears the
// session.
func WithAuthExpiredHook(fn func()) Option {
	return func(c *Client) { c.onAuthExpired = fn }
}

// withSleeper is used by tests to capture backoff delays.
func withSleeper(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.sleep = fn }
}

// New creates a Client for the given versioned base URL, e.g.
// "http://localhost:5000/api/v1".
func New(baseURL string, sess *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		http:       &http.Client{},
		session:    sess,
		log:        zap.NewNop(),
		maxRetries: DefaultMaxRetries,
		baseDelay:  DefaultBaseDelay,
		sleep:      sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Get issues a GET and decodes the response into out (may be nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT (full replace) with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch issues a PATCH (partial or status update) with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay << (attempt - 1)
			c.log.Warn("retrying request",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(lastErr))
			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
		}

		retryable, err := c.attempt(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		// Cancellation is never reinterpreted or retried.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !retryable {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

// attempt performs a single HTTP exchange. It reports whether a failure is
// transient (worth retrying) alongside the error.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out any) (retryable bool, err error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport-level failure (connection refused, reset, DNS).
		return true, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// The session is unrecoverable in place: clear it and tell the host.
		if clearErr := c.session.Clear(); clearErr != nil {
			c.log.Error("clearing session after 401", zap.Error(clearErr))
		}
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
		return false, ErrAuthExpired

	case resp.StatusCode == http.StatusConflict:
		return false, ErrConflict

	case resp.StatusCode >= 500:
		return true, &StatusError{Code: resp.StatusCode, Message: serverMessage(respBody)}

	case resp.StatusCode >= 400:
		return false, &StatusError{Code: resp.StatusCode, Message: serverMessage(respBody)}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return false, fmt.Errorf("decoding response: %w", err)
		}
	}
	return false, nil
}

// serverMessage extracts the conventional {"message": "..."} detail from an
// error body, if present.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		return payload.Message
	}
	return ""
}
