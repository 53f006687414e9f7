package generate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError describes a request rejected before any network or model
// call. Message is safe to show to the user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks a Request against the parameter bounds. It returns a
// *ValidationError describing the first problem found, or nil when the
// request is acceptable. Validation never has side effects.
func Validate(req Request) error {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return &ValidationError{Field: "prompt", Message: "Please enter a topic or question."}
	}
	// Length limits count characters, not bytes, so multibyte input is not
	// penalized.
	if n := utf8.RuneCountInString(req.Prompt); n > PromptMaxLen {
		return &ValidationError{
			Field:   "prompt",
			Message: fmt.Sprintf("Prompt is too long: %d characters (maximum %d).", n, PromptMaxLen),
		}
	}
	if n := utf8.RuneCountInString(req.ContextText()); n > ContextMaxLen {
		return &ValidationError{
			Field:   "context",
			Message: fmt.Sprintf("Context is too long: %d characters (maximum %d).", n, ContextMaxLen),
		}
	}
	if !req.ContentType.Valid() {
		return &ValidationError{
			Field:   "content_type",
			Message: fmt.Sprintf("Unknown content type %q.", req.ContentType),
		}
	}
	if req.MaxLength < MinLength || req.MaxLength > MaxLength {
		return &ValidationError{
			Field:   "max_length",
			Message: fmt.Sprintf("Max length must be between %d and %d.", MinLength, MaxLength),
		}
	}
	if req.Temperature < MinTemperature || req.Temperature > MaxTemperature {
		return &ValidationError{
			Field:   "temperature",
			Message: fmt.Sprintf("Temperature must be between %.1f and %.1f.", MinTemperature, MaxTemperature),
		}
	}
	if req.TopP != 0 && (req.TopP < MinTopP || req.TopP > MaxTopP) {
		return &ValidationError{
			Field:   "top_p",
			Message: fmt.Sprintf("Top-p must be between %.1f and %.1f.", MinTopP, MaxTopP),
		}
	}
	return nil
}
