package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "google/gemini-2.0-flash-exp",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Vendor-prefixed model IDs pass through without friendly-name mapping.
	if got := p.ModelID(); got != "google/gemini-2.0-flash-exp" {
		t.Errorf("ModelID = %q, want pass-through", got)
	}
}

func TestNewOpenRouterProviderRequiresKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "meta-llama/llama-3-8b"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewOpenRouterProviderCustomBaseURL(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-3-haiku",
		BaseURL: "https://gateway.internal.example/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
