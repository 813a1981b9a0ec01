// Package api implements the JSON-over-HTTP client for the PulseDash
// server: signup, login, liveness probe, and fetching the dashboard
// payload.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// User is the public projection of an account as returned by the server.
// It never carries a password hash.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// APIError is a non-2xx response decoded from the server's {error} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is the PulseDash API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type authPayload struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// SignUp registers a new account and returns its public projection.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var out authPayload
	if err := c.post(ctx, "/signup", body, &out); err != nil {
		return nil, fmt.Errorf("api.SignUp: %w", err)
	}
	return out.User, nil
}

// Login authenticates and returns the account's public projection.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	var out authPayload
	if err := c.post(ctx, "/login", body, &out); err != nil {
		return nil, fmt.Errorf("api.Login: %w", err)
	}
	return out.User, nil
}

// Dashboard fetches the analytics payload verbatim.
func (c *Client) Dashboard(ctx context.Context) (json.RawMessage, error) {
	var payload json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, "/dashboard", nil, &payload); err != nil {
		return nil, fmt.Errorf("api.Dashboard: %w", err)
	}
	return payload, nil
}

// Ping checks server liveness via the root route.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/", nil, nil); err != nil {
		return fmt.Errorf("api.Ping: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if readErr != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
