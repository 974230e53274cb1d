package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wayfinding/internal/config"
	"wayfinding/internal/model"
)

// AnthropicProvider talks to the Anthropic messages API. Same contract as
// the OpenAI provider, different credential signature and request shape.
type AnthropicProvider struct {
	config     *config.AnthropicConfig
	preamble   string
	httpClient *http.Client
}

// NewAnthropicProvider creates a new Anthropic provider with the shared
// facility preamble.
func NewAnthropicProvider(cfg *config.AnthropicConfig, preamble string) *AnthropicProvider {
	return &AnthropicProvider{
		config:   cfg,
		preamble: preamble,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// Name returns the provenance tag for this provider
func (p *AnthropicProvider) Name() string {
	return model.SourceAnthropic
}

// Configured reports whether the API key is format-valid
func (p *AnthropicProvider) Configured() bool {
	return p.config.Configured()
}

// MessagesRequest represents an Anthropic messages API request. The system
// preamble is a top-level field rather than a message role.
type MessagesRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []ChatMessage `json:"messages"`
}

// MessagesResponse represents the Anthropic messages API response
type MessagesResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Role    string `json:"role"`
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Complete performs a single messages call with the facility preamble and
// a bounded token budget.
func (p *AnthropicProvider) Complete(ctx context.Context, question string) (string, error) {
	if !p.Configured() {
		return "", fmt.Errorf("Anthropic API is not enabled (missing API key)")
	}

	req := MessagesRequest{
		Model:     p.config.Model,
		MaxTokens: p.config.MaxTokens,
		System:    p.preamble,
		Messages: []ChatMessage{
			{Role: "user", Content: question},
		},
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/messages", p.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.config.APIKey)
	httpReq.Header.Set("anthropic-version", p.config.Version)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result MessagesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(result.Content) == 0 {
		return "", fmt.Errorf("no response from Anthropic")
	}

	return result.Content[0].Text, nil
}
