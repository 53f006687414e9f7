package generate

import (
	"strings"
	"testing"
)

func TestExtractTopic(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"question words stripped", "What is photosynthesis", "photosynthesis"},
		{"three word cap", "Explain quantum entanglement particle physics theory", "explain quantum entanglement"},
		{"prepositions stripped", "How about the history of the roman empire", "history roman empire"},
		{"all words filtered falls back to prompt", "What is an ox", "What is an ox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTopic(tt.prompt)
			if got != tt.want {
				t.Errorf("ExtractTopic(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestExtractTopic_FallbackTruncates(t *testing.T) {
	// A prompt of only stop words longer than 50 chars falls back to a
	// 50-char prefix.
	prompt := strings.Repeat("is a to on in of ", 5)
	got := ExtractTopic(prompt)
	if len(got) != 50 {
		t.Errorf("expected 50-char fallback, got %d chars: %q", len(got), got)
	}
}

func TestFromTemplate_ExpandsTopic(t *testing.T) {
	req := NewRequest("What is photosynthesis", TypeSummary, "")
	content := FromTemplate(req)

	if !strings.HasPrefix(content, "Summary of photosynthesis:") {
		t.Errorf("unexpected content prefix: %q", content[:40])
	}
	if strings.Contains(content, "{topic}") {
		t.Error("template placeholder left unexpanded")
	}
}

func TestFromTemplate_AppendsContext(t *testing.T) {
	req := NewRequest("What is photosynthesis", TypeExplanation, "For a 5th grade class")
	content := FromTemplate(req)

	if !strings.Contains(content, "Additional Context:\nFor a 5th grade class") {
		t.Error("expected context block appended")
	}
}

func TestFromTemplate_AudienceNotes(t *testing.T) {
	beginner := FromTemplate(NewRequest("basic fractions", TypeExplanation, ""))
	if !strings.Contains(beginner, "tailored for beginners") {
		t.Error("expected beginner note")
	}

	advanced := FromTemplate(NewRequest("advanced fractions", TypeExplanation, ""))
	if !strings.Contains(advanced, "Advanced Note") {
		t.Error("expected advanced note")
	}
}

func TestFromTemplate_UnknownTypeFallsBack(t *testing.T) {
	req := NewRequest("gravity", TypeExplanation, "")
	req.ContentType = "poem"
	content := FromTemplate(req)

	if !strings.Contains(content, "detailed explanation of gravity") {
		t.Error("expected fallback to explanation template")
	}
}

func TestEnhancePrompt(t *testing.T) {
	out := EnhancePrompt("photosynthesis", TypeQuiz)
	if !strings.Contains(out, "Generate quiz questions") {
		t.Error("expected quiz instruction prefix")
	}
	if !strings.HasSuffix(out, "\n\nphotosynthesis") {
		t.Error("expected original prompt appended")
	}
}

func TestBuildUserMessage_WithContext(t *testing.T) {
	req := NewRequest("photosynthesis", TypeExplanation, "middle school audience")
	msg := BuildUserMessage(req)

	if !strings.HasPrefix(msg, "Context: middle school audience") {
		t.Error("expected context block first")
	}
	if !strings.Contains(msg, "Request: ") {
		t.Error("expected request block")
	}
}

func TestListContentTypes(t *testing.T) {
	list := ListContentTypes()
	if len(list.ContentTypes) != 6 {
		t.Fatalf("expected 6 content types, got %d", len(list.ContentTypes))
	}
	if list.ContentTypes[0].Value != "explanation" || list.ContentTypes[0].Label != "Explanation" {
		t.Errorf("unexpected first entry: %+v", list.ContentTypes[0])
	}
	for _, info := range list.ContentTypes {
		if info.Description == "" {
			t.Errorf("empty description for %s", info.Value)
		}
	}
}
