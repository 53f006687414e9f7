package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/educator/internal/history"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo history.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a provider from EDUCATOR_* env config when a
// provider is explicitly selected, otherwise falls back to discovering a
// standard API key. Returns (nil, false, nil) when no provider is
// configured; callers then use the template fallback.
func NewProviderFromEnv(ctx context.Context, eventRepo history.EventRepo) (Provider, bool, error) {
	if os.Getenv("EDUCATOR_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, false, err
		}
		p, err := NewProvider(ctx, cfg, eventRepo)
		if err != nil {
			return nil, false, err
		}
		return p, true, nil
	}

	cfg, ok := DiscoverConfig()
	if !ok {
		return nil, false, nil
	}
	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}
