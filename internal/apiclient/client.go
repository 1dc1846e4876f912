// Package apiclient is a typed HTTP client for the stock API. Every call
// carries the session's bearer token when one is held, and every failure is
// reported as a *model.APIError (or a model.DomainError for input rejected
// before sending).
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"stock-admin/internal/model"
	"stock-admin/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// Client issues requests against a single base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    *time.Duration
	tokens     session.TokenStore
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is used as
// is unless WithTimeout is also given, in which case a copy is used.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// New creates a client for baseURL that reads its bearer token from tokens.
// tokens may be nil, in which case every request is anonymous.
func New(baseURL string, tokens session.TokenStore, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		logger:     logger.With().Str("component", "api-client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		httpClient := *c.httpClient
		httpClient.Timeout = *c.timeout
		c.httpClient = &httpClient
	}
	return c
}

// BaseURL returns the URL every request path is joined to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends an authenticated JSON request. in, when non-nil, is encoded as
// the request body. On a 2xx response the body is decoded into out unless
// out is nil, the status is 204, or the body is empty; in those cases out is
// left untouched.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	return c.do(ctx, method, path, in, out, true)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, authenticated bool) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if authenticated && c.tokens != nil {
		session.ApplyAuth(req.Header, c.tokens)
	}

	logger := c.logger.With().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Dur("duration", time.Since(start)).Msg("request failed")
		return &model.APIError{Kind: model.KindTransport, Err: err}
	}
	defer resp.Body.Close()

	logger.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := model.NewStatusError(resp.StatusCode, statusText(resp), errorMessage(resp.Body))
		logger.Warn().
			Int("status", resp.StatusCode).
			Str("error", apiErr.Message).
			Msg("api error response")
		return apiErr
	}

	// 204 carries no body by definition; do not touch it.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read response body")
		return &model.APIError{Kind: model.KindTransport, StatusCode: resp.StatusCode, Status: statusText(resp), Err: err}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn().Err(err).Msg("failed to decode response body")
		return &model.APIError{Kind: model.KindDecode, StatusCode: resp.StatusCode, Status: statusText(resp), Err: err}
	}

	return nil
}

// statusText returns the reason phrase of resp, e.g. "Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}

// errorMessage extracts the backend's error field from a failed response.
// Plain-text bodies are returned as is.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}

	var errResp model.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		return errResp.Error
	}
	return string(data)
}
