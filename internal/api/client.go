package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/logger"
)

// TokenSource supplies the bearer token for outgoing requests. Returning an
// empty token sends the request unauthenticated.
type TokenSource func() (string, error)

// Config configures the API client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      TokenSource
	// OnUnauthorized runs at most once per client when the backend answers
	// 401. It is the injectable session-teardown hook: clearing stored
	// credentials and returning the user to login happens there, not here.
	OnUnauthorized func()
}

// Client is the single shared request pipeline to the RESPIRA backend. It is
// constructed once at startup and passed to commands and the TUI explicitly.
type Client struct {
	baseURL        string
	hc             *http.Client
	token          TokenSource
	onUnauthorized func()
	teardownOnce   sync.Once
}

// New creates an API client. A nil HTTPClient gets a default with the
// standard timeout; a nil token source sends unauthenticated requests.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}
	token := cfg.Token
	if token == nil {
		token = func() (string, error) { return "", nil }
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		hc:             hc,
		token:          token,
		onUnauthorized: cfg.OnUnauthorized,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(constants.RequestIDHeader, uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.token(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return c.statusError(resp.StatusCode, raw, method, path)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	return nil
}

func (c *Client) statusError(status int, raw []byte, method, path string) error {
	var env envelope
	_ = json.Unmarshal(raw, &env)

	switch status {
	case http.StatusUnauthorized:
		// Teardown exactly once per client so a burst of in-flight requests
		// failing together cannot loop the redirect.
		c.teardownOnce.Do(func() {
			logger.Warn("Session expired, tearing down", "method", method, "path", path)
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		})
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusUnprocessableEntity:
		return &ValidationError{Message: env.Message, Fields: env.Errors}
	}
	logger.Error("API request failed", "method", method, "path", path, "status", status)
	return &APIError{StatusCode: status, Message: env.Message}
}
