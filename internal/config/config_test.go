package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			assert.Equal(t, tc.expected, getEnvOrDefault(tc.key, tc.defaultVal))
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			assert.Equal(t, tc.expected, getEnvAsIntOrDefault(tc.key, tc.defaultVal))
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	assert.Panics(t, func() { mustGetEnv("NONEXISTENT_REQUIRED_VAR") })
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	t.Setenv("TEST_REQUIRED", "value123")
	assert.Equal(t, "value123", mustGetEnv("TEST_REQUIRED"))
}

func TestLoad_OpenAIDefaults(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "")

	cfg := Load()
	require.NotNil(t, cfg)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAIChatURL)
}

func TestLoad_GeminiRequiresKey(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "")

	assert.Panics(t, func() { Load() })
}

func TestLoad_UnknownProviderPanics(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "mystery")

	assert.Panics(t, func() { Load() })
}

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("CHAT_SERVER_URL", "")
	t.Setenv("CHAT_THEME", "light")

	cfg := LoadClient()
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, "light", cfg.Theme)
}
