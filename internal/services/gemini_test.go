package services

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGeminiHistory_DropsLeadingModelTurns(t *testing.T) {
	system, history, last := buildGeminiHistory([]PromptMessage{
		{Role: RoleSystem, Content: SystemInstruction},
		{Role: RoleAssistant, Content: "Welcome"},
		{Role: RoleUser, Content: "Hello"},
	})

	assert.Equal(t, SystemInstruction, system)
	assert.Empty(t, history)
	require.NotNil(t, last)
	assert.Equal(t, RoleUser, last.Role)
	assert.Equal(t, []genai.Part{genai.Text("Hello")}, last.Parts)
}

func TestBuildGeminiHistory_MergesAndAlternates(t *testing.T) {
	_, history, last := buildGeminiHistory([]PromptMessage{
		{Role: RoleSystem, Content: SystemInstruction},
		{Role: RoleUser, Content: "one"},
		{Role: RoleAssistant, Content: "reply"},
		{Role: RoleAssistant, Content: "Sorry, something went wrong."},
		{Role: RoleUser, Content: "two"},
		{Role: RoleUser, Content: "three"},
	})

	require.Len(t, history, 2)
	assert.Equal(t, RoleUser, history[0].Role)
	assert.Equal(t, geminiRoleModel, history[1].Role)
	assert.Len(t, history[1].Parts, 2)

	require.NotNil(t, last)
	assert.Equal(t, []genai.Part{genai.Text("two"), genai.Text("three")}, last.Parts)
}

func TestBuildGeminiHistory_NoUserTurn(t *testing.T) {
	_, history, last := buildGeminiHistory([]PromptMessage{
		{Role: RoleSystem, Content: SystemInstruction},
		{Role: RoleAssistant, Content: "Welcome"},
	})
	assert.Nil(t, history)
	assert.Nil(t, last)
}

func TestExtractText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hi "), genai.Text("there!")}}},
		},
	}
	assert.Equal(t, "Hi there!", extractText(resp))
}
