package service

import (
	"context"
	"log"

	"wayfinding/internal/model"
)

// ChatService orchestrates the chat paths: configured external providers
// in priority order, then the local responder. The chat path never fails
// outward; every question gets a response with a provenance tag naming the
// path that actually produced it.
type ChatService struct {
	providers []CompletionProvider
	local     *LocalResponder
}

// NewChatService creates a chat service. Providers are tried in the order
// given; the local responder terminates the chain and always succeeds.
func NewChatService(local *LocalResponder, providers ...CompletionProvider) *ChatService {
	return &ChatService{
		providers: providers,
		local:     local,
	}
}

// Ask resolves a question. Unconfigured providers are skipped; a failed or
// cancelled provider call is logged and falls through to the next path
// with no retries.
func (s *ChatService) Ask(ctx context.Context, question string) *model.ChatResponse {
	for _, provider := range s.providers {
		if !provider.Configured() {
			continue
		}

		answer, err := provider.Complete(ctx, question)
		if err != nil {
			log.Printf("%s completion failed: %v", provider.Name(), err)
			continue
		}

		return &model.ChatResponse{
			Response: answer,
			Source:   provider.Name(),
		}
	}

	return &model.ChatResponse{
		Response: s.local.Respond(question),
		Source:   model.SourceLocal,
	}
}

// Status reports which providers carry format-valid credentials and which
// path would be tried first. It is a pure function of configuration and
// never probes live connectivity.
func (s *ChatService) Status() *model.AIStatus {
	status := &model.AIStatus{
		FallbackAvailable: true,
		ActiveProvider:    model.SourceLocal,
		Message:           "ใช้ Local AI Response",
	}

	for _, provider := range s.providers {
		if !provider.Configured() {
			continue
		}

		switch provider.Name() {
		case model.SourceOpenAI:
			status.OpenAIConfigured = true
		case model.SourceAnthropic:
			status.AnthropicConfigured = true
		}

		if status.ActiveProvider == model.SourceLocal {
			status.ActiveProvider = provider.Name()
			status.Message = "ระบบ AI พร้อมใช้งาน"
		}
	}

	return status
}
