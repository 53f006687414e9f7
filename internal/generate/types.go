package generate

import "fmt"

// ContentType is the category of educational output to produce.
type ContentType string

const (
	TypeExplanation ContentType = "explanation"
	TypeSummary     ContentType = "summary"
	TypeQuiz        ContentType = "quiz"
	TypeLesson      ContentType = "lesson"
	TypeExample     ContentType = "example"
	TypeDefinition  ContentType = "definition"
)

// AllContentTypes returns the content types in display order.
func AllContentTypes() []ContentType {
	return []ContentType{
		TypeExplanation,
		TypeSummary,
		TypeQuiz,
		TypeLesson,
		TypeExample,
		TypeDefinition,
	}
}

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case TypeExplanation, TypeSummary, TypeQuiz, TypeLesson, TypeExample, TypeDefinition:
		return true
	}
	return false
}

// Label returns the human-readable name, e.g. "Lesson".
func (t ContentType) Label() string {
	if len(t) == 0 {
		return ""
	}
	return string(t[0]-'a'+'A') + string(t[1:])
}

// Description returns a short description of what the type produces.
func (t ContentType) Description() string {
	switch t {
	case TypeExplanation:
		return "Detailed explanations with examples"
	case TypeSummary:
		return "Concise summaries of key points"
	case TypeQuiz:
		return "Quiz questions and answers"
	case TypeLesson:
		return "Structured lesson plans"
	case TypeExample:
		return "Practical examples and applications"
	case TypeDefinition:
		return "Clear definitions and explanations"
	default:
		return "Educational content"
	}
}

// Parameter bounds and defaults, shared by the client-side form and the
// server-side request validation.
const (
	PromptMaxLen  = 1000
	ContextMaxLen = 2000

	MinLength     = 50
	MaxLength     = 1000
	DefaultLength = 512

	MinTemperature     = 0.1
	MaxTemperature     = 2.0
	DefaultTemperature = 0.7

	MinTopP     = 0.1
	MaxTopP     = 1.0
	DefaultTopP = 0.9
)

// Request is the parameter bundle for one generation call. Zero values for
// the numeric fields mean "use the default"; NewRequest fills them in.
type Request struct {
	Prompt      string      `json:"prompt"`
	ContentType ContentType `json:"content_type"`
	Context     *string     `json:"context"`
	MaxLength   int         `json:"max_length"`
	Temperature float64     `json:"temperature"`
	TopP        float64     `json:"top_p,omitempty"`
}

// NewRequest builds a Request with defaults applied. context may be empty,
// in which case the field is omitted from the wire body (sent as null).
func NewRequest(prompt string, contentType ContentType, context string) Request {
	req := Request{
		Prompt:      prompt,
		ContentType: contentType,
		MaxLength:   DefaultLength,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
	}
	if contentType == "" {
		req.ContentType = TypeExplanation
	}
	if context != "" {
		req.Context = &context
	}
	return req
}

// ContextText returns the optional context, or "" when absent.
func (r Request) ContextText() string {
	if r.Context == nil {
		return ""
	}
	return *r.Context
}

func (r Request) String() string {
	return fmt.Sprintf("%s request (%d chars, max_length=%d, temp=%.1f)",
		r.ContentType, len(r.Prompt), r.MaxLength, r.Temperature)
}
