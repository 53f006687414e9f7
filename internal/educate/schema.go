package educate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/educator/internal/llm"
)

// QuizSchema defines the JSON schema for quiz generation. Quiz is the only
// content type that uses structured output; the sheet is rendered to plain
// text afterward so all content types share the same wire shape.
var QuizSchema = &llm.Schema{
	Name:        "quiz-sheet",
	Description: "A quiz with mixed question types and an answer key",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short quiz title naming the topic",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"kind": map[string]any{
							"type": "string",
							"enum": []any{"multiple_choice", "true_false", "short_answer"},
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer options; only for multiple_choice",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer",
						},
					},
					"required":             []any{"question", "kind", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

type quizSheet struct {
	Title     string         `json:"title"`
	Questions []quizQuestion `json:"questions"`
}

type quizQuestion struct {
	Question string   `json:"question"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
}

// renderQuiz converts the validated quiz JSON into readable text.
func renderQuiz(raw string) (string, error) {
	var sheet quizSheet
	if err := json.Unmarshal([]byte(raw), &sheet); err != nil {
		return "", fmt.Errorf("parse quiz response: %w", err)
	}

	var b strings.Builder
	b.WriteString("Quiz: " + sheet.Title + "\n")

	for i, q := range sheet.Questions {
		b.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, q.Question))
		if q.Kind == "multiple_choice" {
			for j, opt := range q.Options {
				b.WriteString(fmt.Sprintf("   %c) %s\n", 'a'+j, opt))
			}
		}
		if q.Kind == "true_false" {
			b.WriteString("   (True/False)\n")
		}
	}

	b.WriteString("\nAnswer Key:\n")
	for i, q := range sheet.Questions {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Answer))
	}

	return b.String(), nil
}
