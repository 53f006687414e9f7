package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubAnthropic(t *testing.T, status int, body string) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-20250514"}
}

func TestAnthropicGenerate(t *testing.T) {
	p := stubAnthropic(t, http.StatusOK, `{
		"id": "msg_test",
		"type": "message",
		"role": "assistant",
		"content": [{"type": "text", "text": "Photosynthesis is the process by which plants convert light into energy."}],
		"model": "claude-sonnet-4-20250514",
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 50, "output_tokens": 30}
	}`)

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an expert educator.",
		Messages:  []Message{{Role: RoleUser, Content: "Explain photosynthesis."}},
		MaxTokens: 256,
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "Photosynthesis")
	assert.Equal(t, 50, resp.Usage.InputTokens)
	assert.Equal(t, 30, resp.Usage.OutputTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestAnthropicGenerateErrors(t *testing.T) {
	req := Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	}

	t.Run("rate limited", func(t *testing.T) {
		p := stubAnthropic(t, http.StatusTooManyRequests,
			`{"type": "error", "error": {"type": "rate_limit_error", "message": "Rate limit exceeded"}}`)
		_, err := p.Generate(context.Background(), req)
		require.Error(t, err)

		var rl *ErrRateLimit
		assert.ErrorAs(t, err, &rl)
	})

	t.Run("server error", func(t *testing.T) {
		p := stubAnthropic(t, http.StatusInternalServerError,
			`{"type": "error", "error": {"type": "api_error", "message": "Internal server error"}}`)
		_, err := p.Generate(context.Background(), req)
		require.Error(t, err)

		var unavail *ErrProviderUnavailable
		assert.ErrorAs(t, err, &unavail)
	})
}

func TestAnthropicModelAliases(t *testing.T) {
	aliases := map[string]string{
		"claude-sonnet":            "claude-sonnet-4-20250514",
		"claude-haiku":             "claude-haiku-4-5-20251001",
		"claude-sonnet-4-20250514": "claude-sonnet-4-20250514",
	}
	for alias, want := range aliases {
		assert.Equal(t, want, resolveModel(alias, anthropicModels), "alias %q", alias)
	}
}
