package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNoChatEndpoint means no chat URL is configured; callers fall back to
// the built-in scripted responder.
var ErrNoChatEndpoint = errors.New("no chat endpoint configured")

// Chat sends a question to the external assistant endpoint and returns its
// answer.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	if c.chatURL == "" {
		return "", ErrNoChatEndpoint
	}

	payload, err := json.Marshal(map[string]string{"user_prompt": prompt})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.chatURL, bytes.NewReader(payload), "application/json", false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var answer struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if answer.Answer == "" {
		return "", fmt.Errorf("%w: empty answer", ErrMalformedResponse)
	}
	return answer.Answer, nil
}
