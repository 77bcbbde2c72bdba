// Package gateway is the single point of outbound HTTP calls. It attaches
// the current credential token, converts non-2xx answers into typed errors,
// and enforces the global authentication-rejection policy: a 401 on any
// endpoint except login ends the session and sends the user back to the
// login screen, while the failing call still sees its error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Fyandono/project-maintenance-system/internal/common"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

// LoginPath is the one endpoint exempt from the 401 session-clearing policy:
// a rejected login attempt is an ordinary validation failure.
const LoginPath = "/login"

// Doer issues one backend request and returns the raw response body.
type Doer interface {
	Do(ctx context.Context, method, path string, body any, query url.Values) ([]byte, error)
}

// SessionHooks is what the gateway needs from the session layer: the current
// token for bearer attachment, and the rejection hook that clears the session
// and forces navigation to login. Keeping both behind an interface keeps the
// gateway's observable side effects testable.
type SessionHooks interface {
	Token() string
	HandleAuthReject(ctx context.Context)
}

// Client is the HTTP implementation of Doer.
type Client struct {
	base    *url.URL
	http    *http.Client
	session SessionHooks
	log     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, session SessionHooks, log logging.Logger) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	return &Client{
		base:    base,
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}, nil
}

// Do sends one JSON request. body is marshalled when non-nil; query is
// appended to the URL. The returned bytes are the raw response body.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) ([]byte, error) {
	resp, data, err := c.send(ctx, method, path, body, query)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, c.rejectionError(ctx, path, resp, data)
	}
	return data, nil
}

// Download fetches a binary resource (blob response). The suggested file
// name is taken from Content-Disposition when the server provides one.
func (c *Client) Download(ctx context.Context, path string) ([]byte, string, error) {
	resp, data, err := c.send(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode >= 400 {
		return nil, "", c.rejectionError(ctx, path, resp, data)
	}

	name := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			name = params["filename"]
		}
	}
	return data, name, nil
}

func (c *Client) send(ctx context.Context, method, path string, body any, query url.Values) (*http.Response, []byte, error) {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, nil, fmt.Errorf("%s %s: %w: %w", method, path, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	c.log.Debug(ctx, "request completed",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	return resp, data, nil
}

// rejectionError converts a non-2xx response into an *APIError and applies
// the authentication-rejection policy. The error is always returned to the
// caller; nothing is swallowed.
func (c *Client) rejectionError(ctx context.Context, path string, resp *http.Response, data []byte) error {
	apiErr := &APIError{
		Status:    resp.StatusCode,
		Message:   serverMessage(data),
		RequestID: resp.Request.Header.Get("X-Request-Id"),
	}

	if resp.StatusCode == http.StatusUnauthorized && path != LoginPath {
		c.log.Warn(ctx, "authentication rejected, clearing session", "path", path)
		c.session.HandleAuthReject(ctx)
	}

	return apiErr
}

func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
