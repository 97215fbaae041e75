package models

// Sender identifies who produced a message in the conversation log.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderAI     Sender = "ai"
	SenderSystem Sender = "system"
)

// Message is one entry of the conversation log. IDs grow strictly in
// insertion order within a session.
type Message struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// ChatMessage is a message as it arrives at the relay. Client-side ids
// are accepted on the wire and ignored.
type ChatMessage struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender" validate:"required,oneof=user ai system"`
}

// SettingsPayload carries the optional per-request generation settings.
// Nil fields fall back to the relay defaults.
type SettingsPayload struct {
	Model       *string  `json:"model,omitempty"`
	MaxTokens   *int     `json:"maxTokens,omitempty" validate:"omitnil,gte=0"`
	Temperature *float64 `json:"temperature,omitempty" validate:"omitnil,gte=0,lte=2"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Messages []ChatMessage    `json:"messages" validate:"required,min=1,dive"`
	Settings *SettingsPayload `json:"settings,omitempty"`
}

// ChatResponse is the reply from the relay.
type ChatResponse struct {
	Response string `json:"response"`
}
