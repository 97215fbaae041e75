package models

const (
	ModelGPT4oMini   = "gpt-4o-mini"
	ModelGPT35Turbo  = "gpt-3.5-turbo"
	DefaultModel     = ModelGPT4oMini
	DefaultMaxTokens = 300
	DefaultTemp      = 0.7

	MinMaxTokens   = 50
	MaxMaxTokens   = 500
	MinTemperature = 0.0
	MaxTemperature = 1.0
)

// AvailableModels lists the models offered in the settings panel, in display order.
var AvailableModels = []string{ModelGPT4oMini, ModelGPT35Turbo}

// Settings is the generation configuration owned by the conversation controller.
type Settings struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
}

func DefaultSettings() Settings {
	return Settings{
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemp,
	}
}

// Payload converts the settings into the wire shape sent to the relay.
func (s Settings) Payload() *SettingsPayload {
	model, maxTokens, temperature := s.Model, s.MaxTokens, s.Temperature
	return &SettingsPayload{
		Model:       &model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}
}
