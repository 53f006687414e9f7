package generate

import (
	"fmt"
	"strings"
)

// SystemPrompt sets the model's role for all educational generation.
const SystemPrompt = `You are an expert educator and content creator. Your task is to generate high-quality educational content that is:
- Clear and easy to understand
- Accurate and factual
- Engaging and informative
- Appropriate for the target audience
- Well-structured with examples when helpful

Please provide educational content based on the following request:`

// typeInstructions maps each content type to the instruction prefixed to
// the user's prompt.
var typeInstructions = map[ContentType]string{
	TypeExplanation: "Provide a clear, detailed explanation of the following topic. Include examples and break down complex concepts into understandable parts:",
	TypeSummary:     "Create a concise summary of the following topic, highlighting the key points and main ideas:",
	TypeQuiz:        "Generate quiz questions and answers about the following topic. Include multiple choice, true/false, and short answer questions:",
	TypeLesson:      "Create a structured lesson plan for teaching the following topic. Include objectives, activities, and assessment methods:",
	TypeExample:     "Provide practical examples and real-world applications of the following concept:",
	TypeDefinition:  "Provide a clear definition and explanation of the following term or concept, including its significance and context:",
}

// EnhancePrompt prefixes the prompt with the instruction for its content
// type. Unknown types fall back to the explanation instruction.
func EnhancePrompt(prompt string, contentType ContentType) string {
	instruction, ok := typeInstructions[contentType]
	if !ok {
		instruction = typeInstructions[TypeExplanation]
	}
	return instruction + "\n\n" + prompt
}

// BuildUserMessage assembles the full user message sent to the model,
// folding in the optional context block.
func BuildUserMessage(req Request) string {
	var b strings.Builder

	if ctx := req.ContextText(); ctx != "" {
		b.WriteString(fmt.Sprintf("Context: %s\n\n", ctx))
	}
	b.WriteString(fmt.Sprintf("Request: %s", EnhancePrompt(req.Prompt, req.ContentType)))

	return b.String()
}
