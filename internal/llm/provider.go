package llm

import "context"

// Provider is the core abstraction for LLM interaction. The generation
// service calls Generate with a Request and receives the model's text.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its response. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the response Text is JSON validated against that
	// schema. Otherwise Text is free-form prose.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Content generation is
	// single-turn, so this normally contains one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// Used for structured content (quiz sheets); nil for prose.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. The generation API accepts
	// 0.1 - 2.0; each backend clamps to its own supported range.
	Temperature float64

	// TopP is the nucleus sampling parameter. Zero means provider default.
	TopP float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "quiz-sheet".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Text is the generated output. When a Schema was provided in the
	// request, this is the validated JSON document. Otherwise it is the
	// model's plain text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
