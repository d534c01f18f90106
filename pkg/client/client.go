/*
Package client implements the low-level REST client for the Memphora API.
Each public method maps to one documented endpoint: inputs are checked for
presence only, the request is sent with bearer authentication, and the
decoded payload is returned unchanged in shape. Transient failures (429 and
5xx) are retried with exponential backoff before an error surfaces.
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	apierrors "github.com/sanyogitamemphora-maker/memphora-sdk/pkg/errors"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.memphora.ai/api/v1"

// Retry policy mirroring the original client's session adapter.
const (
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
	defaultTimeout    = 30 * time.Second
)

// Client talks to the Memphora REST API.
type Client struct {
	baseURL    string
	apiKey     string
	conn       *http.Client
	maxRetries int
	retryDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(conn *http.Client) Option {
	return func(c *Client) { c.conn = conn }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.conn.Timeout = d }
}

// WithMaxRetries sets how many times a transient failure is retried.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithRetryDelay sets the base delay of the exponential backoff.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// New creates a client for the given base URL. An empty baseURL selects the
// production endpoint. The apiKey is sent as a bearer token on every
// request when non-empty.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		conn: &http.Client{
			Timeout: defaultTimeout,
		},
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// retryable reports whether a status code warrants another attempt.
func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// do sends one API request, retrying transient failures, and decodes the
// response body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte

	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var (
		resp    *http.Response
		lastErr error
	)

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.wait(ctx, attempt, resp); err != nil {
				return err
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return &apierrors.ConnectionError{Message: "failed to build request", Err: err}
		}
		c.setHeaders(req, "application/json")

		log.Debug("sending API request", "method", method, "path", path, "attempt", attempt+1)

		resp, lastErr = c.conn.Do(req)
		if lastErr != nil {
			continue
		}

		if retryable(resp.StatusCode) && attempt < c.maxRetries {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			continue
		}

		break
	}

	if lastErr != nil {
		return &apierrors.ConnectionError{
			Message: fmt.Sprintf("%s %s", method, path),
			Err:     lastErr,
		}
	}

	return c.decode(resp, method, path, out)
}

// doMultipart uploads a single file part, used by the image upload
// endpoint. Retries are skipped: the request body is not replayable once
// streamed.
func (c *Client) doMultipart(ctx context.Context, path string, query url.Values, field, filename string, data []byte, out any) error {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err = part.Write(data); err != nil {
		return fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, buf)
	if err != nil {
		return &apierrors.ConnectionError{Message: "failed to build request", Err: err}
	}
	c.setHeaders(req, writer.FormDataContentType())

	log.Debug("uploading file", "path", path, "filename", filename, "bytes", len(data))

	resp, err := c.conn.Do(req)
	if err != nil {
		return &apierrors.ConnectionError{
			Message: fmt.Sprintf("POST %s", path),
			Err:     err,
		}
	}

	return c.decode(resp, http.MethodPost, path, out)
}

// setHeaders applies authentication and tracing headers.
func (c *Client) setHeaders(req *http.Request, contentType string) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// wait blocks for the backoff delay of the given attempt, honoring a
// Retry-After header from the previous response when one was sent.
func (c *Client) wait(ctx context.Context, attempt int, prev *http.Response) error {
	delay := c.retryDelay * time.Duration(1<<(attempt-1))

	if prev != nil {
		if after := prev.Header.Get("Retry-After"); after != "" {
			if secs, err := strconv.Atoi(after); err == nil && secs > 0 {
				delay = time.Duration(secs) * time.Second
			}
		}
	}

	log.Debug("retrying API request", "attempt", attempt, "delay", delay)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return &apierrors.ConnectionError{Message: "request cancelled", Err: ctx.Err()}
	case <-timer.C:
		return nil
	}
}

// decode turns a completed exchange into a typed error or a decoded payload.
func (c *Client) decode(resp *http.Response, method, path string, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierrors.ConnectionError{
			Message: fmt.Sprintf("failed to read response for %s %s", method, path),
			Err:     err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Debug("API request failed", "method", method, "path", path, "status", resp.StatusCode)
		return apierrors.FromResponse(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &apierrors.DecodingError{
			Message: fmt.Sprintf("%s %s", method, path),
			Err:     err,
		}
	}

	return nil
}
