package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storedash/internal/logging"
)

// HTTPClient is the JSON-over-HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger
}

// NewHTTPClient builds an HTTPClient for the given base URL (e.g.
// "http://localhost:8000/api"). A zero timeout means no client-side timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// errorBody is the shape the server uses for rejections.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one JSON request. A non-nil body is marshalled into the request;
// a non-empty bearer is sent as an Authorization header; a non-nil out is
// filled from a 2xx response body. 204 responses are successes with no body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, bearer string, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// intentionally best-effort: a non-JSON error body yields an empty message
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		c.log.Debug(ctx, "request rejected", "path", path, "status", resp.StatusCode)
		return &APIError{Status: resp.StatusCode, Message: eb.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Login exchanges credentials for a user record and a token pair.
func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, EndpointLogin, req, "", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an account and returns the same shape as Login.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, EndpointRegister, req, "", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout notifies the server that the token should be invalidated. The request
// carries no body, only the bearer header.
func (c *HTTPClient) Logout(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, EndpointLogout, nil, accessToken, nil)
}

// Refresh exchanges a refresh token for a new token pair.
func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	body := struct {
		RefreshToken string `json:"refreshToken"`
	}{RefreshToken: refreshToken}

	var res TokenPair
	if err := c.do(ctx, http.MethodPost, EndpointRefresh, body, "", &res); err != nil {
		return nil, err
	}
	return &res, nil
}
