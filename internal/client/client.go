// Package client talks to the relay's chat endpoint on behalf of the
// conversation controller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"advanced-ai/internal/models"
)

// StatusError reports a non-2xx answer from the relay.
type StatusError struct {
	StatusCode int
	Code       string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("relay returned status %d (%s)", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("relay returned status %d", e.StatusCode)
}

type RelayClient struct {
	httpClient *http.Client
	chatURL    string
}

// New returns a client for the relay at serverURL, e.g. http://localhost:8080.
func New(serverURL string, httpClient *http.Client) *RelayClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &RelayClient{
		httpClient: httpClient,
		chatURL:    strings.TrimRight(serverURL, "/") + "/chat",
	}
}

type chatPayload struct {
	Messages []models.Message        `json:"messages"`
	Settings *models.SettingsPayload `json:"settings"`
}

// Complete posts the snapshot and settings and returns the reply text.
func (c *RelayClient) Complete(ctx context.Context, messages []models.Message, settings models.Settings) (string, error) {
	body, err := json.Marshal(chatPayload{Messages: messages, Settings: settings.Payload()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chatURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr models.ErrorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		json.Unmarshal(raw, &apiErr)
		return "", &StatusError{StatusCode: resp.StatusCode, Code: apiErr.Error.Code}
	}

	var out struct {
		Response *string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if out.Response == nil {
		return "", fmt.Errorf("chat response has no response field")
	}
	return *out.Response, nil
}
