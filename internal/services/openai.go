package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const maxErrorBody = 4096

// OpenAIService calls an OpenAI-compatible chat completions endpoint.
// chatURL is the complete endpoint, nothing is appended to it.
type OpenAIService struct {
	client  *http.Client
	apiKey  string
	chatURL string
}

func NewOpenAIService(apiKey, chatURL string, timeout time.Duration) *OpenAIService {
	return &OpenAIService{
		client:  &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		chatURL: chatURL,
	}
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []PromptMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message      PromptMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type openAIErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (s *OpenAIService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	jsonBody, err := json.Marshal(openAIRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.chatURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var body openAIErrorBody
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
			msg = body.Error.Message
		}
		return "", &ProviderError{Provider: "openai", StatusCode: resp.StatusCode, Message: msg}
	}

	var out openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	log.WithFields(logrus.Fields{
		"model":             req.Model,
		"finish_reason":     out.Choices[0].FinishReason,
		"prompt_tokens":     out.Usage.PromptTokens,
		"completion_tokens": out.Usage.CompletionTokens,
	}).Debug("OpenAI completion received")

	return out.Choices[0].Message.Content, nil
}
