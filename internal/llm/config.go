package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures an LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one generation call including retries. Long-form
	// content routinely runs past 30s, so the default is generous.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // set for OpenRouter or other compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig tunes the backoff of the retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults each provider starts from.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv reads EDUCATOR_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envOverride(&cfg.Provider, "EDUCATOR_LLM_PROVIDER")

	envOverride(&cfg.Anthropic.APIKey, "EDUCATOR_ANTHROPIC_API_KEY")
	envOverride(&cfg.Anthropic.Model, "EDUCATOR_ANTHROPIC_MODEL")

	envOverride(&cfg.OpenAI.APIKey, "EDUCATOR_OPENAI_API_KEY")
	envOverride(&cfg.OpenAI.Model, "EDUCATOR_OPENAI_MODEL")
	envOverride(&cfg.OpenAI.BaseURL, "EDUCATOR_OPENAI_BASE_URL")

	envOverride(&cfg.Gemini.APIKey, "EDUCATOR_GEMINI_API_KEY")
	envOverride(&cfg.Gemini.Model, "EDUCATOR_GEMINI_MODEL")

	envOverride(&cfg.OpenRouter.APIKey, "EDUCATOR_OPENROUTER_API_KEY")
	envOverride(&cfg.OpenRouter.Model, "EDUCATOR_OPENROUTER_MODEL")

	return cfg
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig checks the vendors' conventional API key variables and
// returns a Config for the first one set. The order (Gemini, OpenAI,
// Anthropic, OpenRouter) favors providers with free tiers.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env      string
		provider string
		key      func(*Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	}

	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			*p.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate ensures the selected provider has its API key.
func (c Config) Validate() error {
	required := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}

	key, known := required[c.Provider]
	if !known {
		if c.Provider == "mock" {
			return nil
		}
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("EDUCATOR_%s_API_KEY is required for the %s provider",
			envName(c.Provider), c.Provider)
	}
	return nil
}

func envName(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC"
	case "openai":
		return "OPENAI"
	case "gemini":
		return "GEMINI"
	default:
		return "OPENROUTER"
	}
}
