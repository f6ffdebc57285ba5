package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	"github.com/canyfix/repairdesk/internal/pkg/logger"
	nrpkg "github.com/canyfix/repairdesk/internal/pkg/newrelic"
)

// DefaultTimeout for HTTP requests when none is configured
const DefaultTimeout = 10 * time.Second

// Config configures a Client
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is a JSON HTTP client bound to one base URL
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// RequestOption customizes a single request
type RequestOption func(*http.Request)

// WithHeader sets a header on a single request. Empty values are skipped.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		if value != "" {
			req.Header.Set(key, value)
		}
	}
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string, opts ...RequestOption) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, endpoint, nil, opts...)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}, opts ...RequestOption) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, endpoint, body, opts...)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}, opts ...RequestOption) (*http.Response, error) {
	return c.Do(ctx, http.MethodPut, endpoint, body, opts...)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, endpoint string, opts ...RequestOption) (*http.Response, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, opts...)
}

// Do sends the request and returns the raw response. HTTP error statuses are
// not errors; the caller owns the response body.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}, opts ...RequestOption) (*http.Response, error) {
	url := strings.TrimSuffix(c.baseURL, "/") + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(constants.HeaderAPIKey, c.apiKey)
	}
	if requestID, ok := ctx.Value(constants.CtxRequestID).(string); ok && requestID != "" {
		req.Header.Set(constants.HeaderRequestID, requestID)
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.Debug("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}
