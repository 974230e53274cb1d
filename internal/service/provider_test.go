package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wayfinding/internal/config"
)

func TestOpenAIProvider_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test-aaaaaaaaaaaaaaaa" {
			t.Errorf("Unexpected Authorization header %q", got)
		}

		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("Unexpected message shape: %+v", req.Messages)
		}
		if req.MaxTokens != 500 {
			t.Errorf("Expected bounded token budget 500, got %d", req.MaxTokens)
		}

		resp := ChatCompletionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Index        int         `json:"index"`
			Message      ChatMessage `json:"message"`
			FinishReason string      `json:"finish_reason"`
		}{Message: ChatMessage{Role: "assistant", Content: "ห้องประชุมโยธี ชั้น 11 ค่ะ"}})
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	cfg := &config.OpenAIConfig{
		APIKey:      "sk-test-aaaaaaaaaaaaaaaa",
		APIBase:     server.URL,
		Model:       "gpt-3.5-turbo",
		MaxTokens:   500,
		Temperature: 0.7,
		Timeout:     5,
	}
	provider := NewOpenAIProvider(cfg, "test preamble")

	if !provider.Configured() {
		t.Fatal("Expected provider to report configured")
	}

	answer, err := provider.Complete(context.Background(), "โยธีอยู่ไหน")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if answer != "ห้องประชุมโยธี ชั้น 11 ค่ะ" {
		t.Errorf("Unexpected answer %q", answer)
	}
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := &config.OpenAIConfig{
		APIKey:  "sk-test-aaaaaaaaaaaaaaaa",
		APIBase: server.URL,
		Timeout: 5,
	}
	provider := NewOpenAIProvider(cfg, "test preamble")

	if _, err := provider.Complete(context.Background(), "สวัสดี"); err == nil {
		t.Error("Expected an error on provider-side failure")
	}
}

func TestOpenAIProvider_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "Empty key", key: ""},
		{name: "Wrong prefix", key: "pk-aaaaaaaaaaaaaaaaaaaaaaaa"},
		{name: "Too short", key: "sk-short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewOpenAIProvider(&config.OpenAIConfig{APIKey: tt.key, Timeout: 5}, "p")
			if provider.Configured() {
				t.Errorf("Key %q must not count as configured", tt.key)
			}
			if _, err := provider.Complete(context.Background(), "q"); err == nil {
				t.Error("Expected Complete to fail when not configured")
			}
		})
	}
}

func TestAnthropicProvider_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "sk-ant-test" {
			t.Errorf("Unexpected x-api-key header %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("Unexpected anthropic-version header %q", got)
		}

		var req MessagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.System == "" {
			t.Error("Expected the system preamble as a top-level field")
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("Unexpected message shape: %+v", req.Messages)
		}

		resp := MessagesResponse{}
		resp.Content = append(resp.Content, struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}{Type: "text", Text: "ตึก E ชั้น 1 ค่ะ"})
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	cfg := &config.AnthropicConfig{
		APIKey:    "sk-ant-test",
		APIBase:   server.URL,
		Version:   "2023-06-01",
		Model:     "claude-3-haiku-20240307",
		MaxTokens: 500,
		Timeout:   5,
	}
	provider := NewAnthropicProvider(cfg, "test preamble")

	if !provider.Configured() {
		t.Fatal("Expected provider to report configured")
	}

	answer, err := provider.Complete(context.Background(), "ห้องฉุกเฉินอยู่ไหน")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if answer != "ตึก E ชั้น 1 ค่ะ" {
		t.Errorf("Unexpected answer %q", answer)
	}
}

func TestAnthropicProvider_NotConfigured(t *testing.T) {
	provider := NewAnthropicProvider(&config.AnthropicConfig{APIKey: "sk-12345678901234567890", Timeout: 5}, "p")
	if provider.Configured() {
		t.Error("An OpenAI-shaped key must not configure the Anthropic provider")
	}
}

func TestSystemPreamble(t *testing.T) {
	preamble := SystemPreamble(newTestDirectory(t))

	for _, want := range []string{
		"โรงพยาบาลราชวิถี",
		"อาคารเฉลิมพระเกียรติฯ ชั้น 11",
		"ห้องประชุมโยธี",
		"02-354-8108",
	} {
		if !strings.Contains(preamble, want) {
			t.Errorf("Preamble missing %q", want)
		}
	}
}
