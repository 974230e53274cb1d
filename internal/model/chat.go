package model

// Provenance tags for chat responses. Callers use the tag for UI
// attribution, so it must name the path that actually produced the text.
const (
	SourceOpenAI    = "openai"
	SourceAnthropic = "anthropic"
	SourceLocal     = "local"
)

// ChatRequest is the body of POST /api/ai/chat.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatResponse carries the answer text plus its provenance tag.
type ChatResponse struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

// AIStatus reports which providers carry format-valid credentials and which
// path would be tried first. It says nothing about live reachability.
type AIStatus struct {
	OpenAIConfigured    bool   `json:"openai_configured"`
	AnthropicConfigured bool   `json:"anthropic_configured"`
	FallbackAvailable   bool   `json:"fallback_available"`
	ActiveProvider      string `json:"active_provider"`
	Message             string `json:"message"`
}
