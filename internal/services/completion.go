package services

import (
	"context"
	"fmt"
)

// Role values used on the provider side of the relay.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PromptMessage is one provider-facing turn.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is what the relay hands to a provider. Messages always
// start with the system instruction.
type CompletionRequest struct {
	Model       string
	Messages    []PromptMessage
	MaxTokens   int
	Temperature float64
}

// Completer produces a single reply for a single request.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ProviderError is returned when the upstream API answers with a non-OK status.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}
