package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOpenAI points a provider at a local server that always responds with
// the given status and body.
func stubOpenAI(t *testing.T, status int, body string) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func TestOpenAIGenerate(t *testing.T) {
	p := stubOpenAI(t, http.StatusOK, `{
		"id": "chatcmpl-test",
		"object": "chat.completion",
		"model": "gpt-4o-mini",
		"choices": [{
			"index": 0,
			"message": {"role": "assistant", "content": "A cell is the basic structural unit of all living organisms."},
			"finish_reason": "stop"
		}],
		"usage": {"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65}
	}`)

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an expert educator.",
		Messages:  []Message{{Role: RoleUser, Content: "Define a cell."}},
		MaxTokens: 256,
	})
	require.NoError(t, err)

	assert.Equal(t, "A cell is the basic structural unit of all living organisms.", resp.Text)
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, 25, resp.Usage.OutputTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestOpenAIGenerateErrors(t *testing.T) {
	req := Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	}

	t.Run("rate limited", func(t *testing.T) {
		p := stubOpenAI(t, http.StatusTooManyRequests,
			`{"error": {"type": "tokens", "message": "Rate limit exceeded", "code": "rate_limit_exceeded"}}`)
		_, err := p.Generate(context.Background(), req)
		require.Error(t, err)

		var rl *ErrRateLimit
		assert.ErrorAs(t, err, &rl)
	})

	t.Run("server error", func(t *testing.T) {
		p := stubOpenAI(t, http.StatusInternalServerError,
			`{"error": {"type": "server_error", "message": "Internal server error"}}`)
		_, err := p.Generate(context.Background(), req)
		require.Error(t, err)

		var unavail *ErrProviderUnavailable
		assert.ErrorAs(t, err, &unavail)
	})
}

func TestOpenAIProviderConstruction(t *testing.T) {
	// The BaseURL override is how OpenRouter and other compatible gateways
	// reuse this provider.
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())

	_, err = NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"})
	assert.Error(t, err, "missing API key should be rejected")
}
