package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"advanced-ai/internal/logging"
	"advanced-ai/internal/models"
)

// SystemInstruction is prepended to every conversation sent upstream.
const SystemInstruction = "You are an advanced AI assistant named Advanced AI. Be helpful, creative, and precise. Use markdown for formatting complex responses."

var log = logging.NewLogger("services")

// ChatService relays a conversation snapshot to the completion provider.
// It keeps no state between calls.
type ChatService struct {
	completer Completer
}

func NewChatService(completer Completer) *ChatService {
	return &ChatService{completer: completer}
}

// Reply builds the provider request for req and returns the generated text.
func (s *ChatService) Reply(ctx context.Context, req models.ChatRequest) (string, error) {
	creq := BuildCompletionRequest(req)

	start := time.Now()
	reply, err := s.completer.Complete(ctx, creq)
	fields := logrus.Fields{
		"model":       creq.Model,
		"max_tokens":  creq.MaxTokens,
		"temperature": creq.Temperature,
		"turns":       len(creq.Messages) - 1,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		log.WithError(err).WithFields(fields).Error("Completion failed")
		return "", fmt.Errorf("completion failed: %w", err)
	}

	log.WithFields(fields).Info("Completion relayed")
	return reply, nil
}

// BuildCompletionRequest maps relay messages onto provider roles, prepends the
// system instruction and fills in default settings.
func BuildCompletionRequest(req models.ChatRequest) CompletionRequest {
	messages := make([]PromptMessage, 0, len(req.Messages)+1)
	messages = append(messages, PromptMessage{Role: RoleSystem, Content: SystemInstruction})
	for _, m := range req.Messages {
		role := RoleAssistant
		if m.Sender == models.SenderUser {
			role = RoleUser
		}
		messages = append(messages, PromptMessage{Role: role, Content: m.Text})
	}

	out := CompletionRequest{
		Model:       models.DefaultModel,
		Messages:    messages,
		MaxTokens:   models.DefaultMaxTokens,
		Temperature: models.DefaultTemp,
	}
	if st := req.Settings; st != nil {
		if st.Model != nil && *st.Model != "" {
			out.Model = *st.Model
		}
		if st.MaxTokens != nil && *st.MaxTokens > 0 {
			out.MaxTokens = *st.MaxTokens
		}
		if st.Temperature != nil {
			out.Temperature = *st.Temperature
		}
	}
	return out
}
