// Package api is the HTTP client for the Hrayfi marketplace backend. All
// persistence, authentication, media storage and search live behind that
// backend; this package only issues requests and normalizes responses.
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

	"github.com/google/uuid"

	"github.com/hrayfi/hrayfi-cli/pkg/session"
)

const defaultTimeout = 30 * time.Second

// Client talks to the marketplace REST API. The session store supplies the
// bearer token for authenticated calls; the client never caches responses
// and never retries.
type Client struct {
	baseURL  string
	chatURL  string
	httpc    *http.Client
	sessions session.Store
}

// New creates a client for the backend at baseURL. Sessions may be a
// MemStore when only public endpoints are needed.
func New(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: defaultTimeout},
		sessions: sessions,
	}
}

// SetHTTPClient replaces the underlying HTTP client (tests, custom timeouts).
func (c *Client) SetHTTPClient(h *http.Client) {
	c.httpc = h
}

// SetChatURL configures the external chat endpoint.
func (c *Client) SetChatURL(url string) {
	c.chatURL = url
}

// bearerToken returns the stored access token, or "" when logged out.
func (c *Client) bearerToken() string {
	sess, err := c.sessions.Load()
	if err != nil || sess == nil {
		return ""
	}
	return sess.AccessToken
}

// do issues a single request. When authed is true the stored bearer token is
// attached; mutating endpoints always pass authed=true, even where the
// backend happens to be lenient.
func (c *Client) do(ctx context.Context, method, url string, body io.Reader, contentType string, authed bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, url, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		if token := c.bearerToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	return resp, nil
}

// checkStatus drains error responses into a StatusError, picking up the
// backend's "detail" message when present.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	se := &StatusError{Status: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil {
			se.Detail = payload.Detail
		}
	}
	return se
}

// getJSON issues a GET and decodes a single-object response.
func getJSON[T any](ctx context.Context, c *Client, path string, authed bool) (*T, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+path, nil, "", authed)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &out, nil
}

// getList issues a GET for a list resource and normalizes the envelope.
func getList[T any](ctx context.Context, c *Client, path string, authed bool) ([]T, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+path, nil, "", authed)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return decodeList[T](resp.Body)
}

// decodeList accepts the two envelope shapes the backend serves for list
// resources: a bare JSON array, or an object with a "results" array (DRF
// style pagination). Anything else is a malformed response.
func decodeList[T any](r io.Reader) ([]T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrMalformedResponse
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return items, nil

	case '{':
		var envelope struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if envelope.Results == nil {
			return nil, fmt.Errorf("%w: object without results field", ErrMalformedResponse)
		}
		var items []T
		if err := json.Unmarshal(envelope.Results, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return items, nil

	default:
		return nil, ErrMalformedResponse
	}
}

// sendJSON issues a request with a JSON body and decodes a JSON response
// into out (which may be nil for endpoints that return no useful body).
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, out any, authed bool) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := c.do(ctx, method, c.baseURL+path, bytes.NewReader(body), "application/json", authed)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
