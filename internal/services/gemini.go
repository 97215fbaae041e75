package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const geminiRoleModel = "model"

// GeminiService answers chat requests through the Gemini API. The model name
// in the request is ignored in favour of the configured Gemini model.
type GeminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

func (s *GeminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	system, history, last := buildGeminiHistory(req.Messages)
	if last == nil {
		return "", fmt.Errorf("conversation has no user turn to answer")
	}

	// A model per call keeps per-request settings off the shared client.
	model := s.client.GenerativeModel(s.modelName)
	model.SetTemperature(float32(req.Temperature))
	model.SetMaxOutputTokens(int32(req.MaxTokens))
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.WithFields(logrus.Fields{
				"candidate":     i,
				"finish_reason": cand.FinishReason.String(),
			}).Warn("Gemini stopped early")
		}
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("Gemini returned an empty reply")
	}
	return text, nil
}

// buildGeminiHistory splits relay messages into the system instruction, the
// chat history and the final user turn. Gemini wants the history to open
// with a user turn and alternate roles, so leading model turns are dropped
// and consecutive turns from the same side are merged.
func buildGeminiHistory(messages []PromptMessage) (string, []*genai.Content, *genai.Content) {
	var system []string
	var contents []*genai.Content

	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}

		role := RoleUser
		if m.Role != RoleUser {
			role = geminiRoleModel
		}
		if len(contents) == 0 && role == geminiRoleModel {
			continue
		}

		if n := len(contents); n > 0 && contents[n-1].Role == role {
			contents[n-1].Parts = append(contents[n-1].Parts, genai.Text(m.Content))
			continue
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}

	// Trailing model turns have nothing to answer.
	for len(contents) > 0 && contents[len(contents)-1].Role != RoleUser {
		contents = contents[:len(contents)-1]
	}
	if len(contents) == 0 {
		return strings.Join(system, "\n\n"), nil, nil
	}

	last := contents[len(contents)-1]
	return strings.Join(system, "\n\n"), contents[:len(contents)-1], last
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
