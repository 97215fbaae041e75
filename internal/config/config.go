package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Logging
	LogLevel  string
	LogFormat string

	// Completion provider
	Provider string

	// OpenAI
	OpenAIAPIKey         string
	OpenAIChatURL        string
	OpenAITimeoutSeconds int

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Frontend
	FrontendURL string
}

// ClientConfig configures the terminal chat client.
type ClientConfig struct {
	ServerURL string
	LogFile   string
	Theme     string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "text"),
		Provider:             strings.ToLower(getEnvOrDefault("COMPLETION_PROVIDER", ProviderOpenAI)),
		OpenAIChatURL:        getEnvOrDefault("OPENAI_CHAT_URL", "https://api.openai.com/v1/chat/completions"),
		OpenAITimeoutSeconds: getEnvAsIntOrDefault("OPENAI_TIMEOUT_SECONDS", 0),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "*"),
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		cfg.OpenAIAPIKey = mustGetEnv("OPENAI_API_KEY")
	case ProviderGemini:
		cfg.GeminiAPIKey = mustGetEnv("GEMINI_API_KEY")
	default:
		panic(fmt.Sprintf("unsupported COMPLETION_PROVIDER %q", cfg.Provider))
	}

	return cfg
}

func LoadClient() *ClientConfig {
	godotenv.Load()

	return &ClientConfig{
		ServerURL: getEnvOrDefault("CHAT_SERVER_URL", "http://localhost:8080"),
		LogFile:   getEnvOrDefault("CHAT_LOG_FILE", "chat.log"),
		Theme:     getEnvOrDefault("CHAT_THEME", "dark"),
	}
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
