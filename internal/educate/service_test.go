package educate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/educator/internal/generate"
	"github.com/abhisek/educator/internal/history"
	"github.com/abhisek/educator/internal/llm"
)

// fakeEvents records appended events in memory.
type fakeEvents struct {
	history.EventRepo
	generations []history.GenerationEventData
}

func (f *fakeEvents) AppendGeneration(_ context.Context, data history.GenerationEventData) error {
	f.generations = append(f.generations, data)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(context.Context, history.LLMRequestEventData) error {
	return nil
}

func validQuizJSON() string {
	return `{
		"title": "Photosynthesis Basics",
		"questions": [
			{"question": "What do plants absorb from sunlight?", "kind": "multiple_choice", "options": ["Energy", "Water", "Soil", "Oxygen"], "answer": "Energy"},
			{"question": "Photosynthesis produces oxygen.", "kind": "true_false", "answer": "True"}
		]
	}`
}

func TestService_GeneratesWithProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "Photosynthesis is how plants turn light into chemical energy.",
	})
	events := &fakeEvents{}
	svc := NewService(mock, events, nil)

	req := generate.NewRequest("What is photosynthesis", generate.TypeExplanation, "")
	resp := svc.Generate(t.Context(), req)

	if !resp.Success {
		t.Fatalf("expected success, got error: %s", resp.Error)
	}
	if !strings.Contains(resp.GeneratedText, "chemical energy") {
		t.Errorf("unexpected generated text: %q", resp.GeneratedText)
	}
	if resp.Prompt != req.Prompt {
		t.Errorf("expected prompt echoed back, got %q", resp.Prompt)
	}
	if resp.ContentType != generate.TypeExplanation {
		t.Errorf("unexpected content type: %q", resp.ContentType)
	}
	if resp.Parameters["max_length"] != generate.DefaultLength {
		t.Errorf("unexpected max_length parameter: %v", resp.Parameters["max_length"])
	}
	if resp.ProcessingTime < 0 {
		t.Errorf("negative processing time: %v", resp.ProcessingTime)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.System != generate.SystemPrompt {
		t.Error("expected the educator system prompt")
	}
	if call.Schema != nil {
		t.Error("prose content types must not request structured output")
	}
	if call.MaxTokens != generate.DefaultLength {
		t.Errorf("expected max tokens %d, got %d", generate.DefaultLength, call.MaxTokens)
	}

	if len(events.generations) != 1 {
		t.Fatalf("expected 1 generation event, got %d", len(events.generations))
	}
	if events.generations[0].Source != "llm" {
		t.Errorf("expected source 'llm', got %q", events.generations[0].Source)
	}
}

func TestService_QuizUsesSchemaAndRenders(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validQuizJSON()})
	svc := NewService(mock, nil, nil)

	req := generate.NewRequest("photosynthesis", generate.TypeQuiz, "")
	resp := svc.Generate(t.Context(), req)

	if !resp.Success {
		t.Fatalf("expected success, got error: %s", resp.Error)
	}
	if mock.Calls[0].Schema != QuizSchema {
		t.Error("expected quiz schema on the LLM request")
	}
	if !strings.Contains(resp.GeneratedText, "Quiz: Photosynthesis Basics") {
		t.Errorf("expected rendered quiz title, got: %q", resp.GeneratedText)
	}
	if !strings.Contains(resp.GeneratedText, "a) Energy") {
		t.Error("expected lettered multiple choice options")
	}
	if !strings.Contains(resp.GeneratedText, "Answer Key:") {
		t.Error("expected answer key section")
	}
}

func TestService_TemplateFallbackWithoutProvider(t *testing.T) {
	events := &fakeEvents{}
	svc := NewService(nil, events, nil)

	if svc.Ready() {
		t.Error("expected not ready without a provider")
	}

	req := generate.NewRequest("What is photosynthesis", generate.TypeSummary, "")
	resp := svc.Generate(t.Context(), req)

	if !resp.Success {
		t.Fatalf("expected success, got error: %s", resp.Error)
	}
	if !strings.HasPrefix(resp.GeneratedText, "Summary of photosynthesis:") {
		t.Errorf("expected template output, got: %q", resp.GeneratedText[:40])
	}
	if events.generations[0].Source != "template" {
		t.Errorf("expected source 'template', got %q", events.generations[0].Source)
	}
}

func TestService_ProviderErrorReportedInBand(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	events := &fakeEvents{}
	svc := NewService(mock, events, nil)

	req := generate.NewRequest("gravity", generate.TypeExplanation, "")
	resp := svc.Generate(t.Context(), req)

	if resp.Success {
		t.Fatal("expected failure response")
	}
	if resp.Error == "" {
		t.Error("expected error message")
	}
	if resp.Prompt != "gravity" {
		t.Errorf("expected prompt echoed on failure, got %q", resp.Prompt)
	}
	if len(events.generations) != 1 || events.generations[0].Success {
		t.Error("expected a failed generation event")
	}
}

func TestService_InvalidRequestRejected(t *testing.T) {
	svc := NewService(nil, nil, nil)

	req := generate.NewRequest("   ", generate.TypeExplanation, "")
	resp := svc.Generate(t.Context(), req)

	if resp.Success {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(resp.Error, "topic or question") {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}

func TestService_Health(t *testing.T) {
	withProvider := NewService(llm.NewMockProvider(), nil, nil)
	h := withProvider.Health()
	if h.Status != "healthy" {
		t.Errorf("expected status 'healthy', got %q", h.Status)
	}
	if h.Service != ServiceName {
		t.Errorf("expected service %q, got %q", ServiceName, h.Service)
	}
	if !h.ModelLoaded {
		t.Error("expected model_loaded true with provider")
	}
	if h.Timestamp == "" {
		t.Error("expected timestamp")
	}

	without := NewService(nil, nil, nil)
	if without.Health().ModelLoaded {
		t.Error("expected model_loaded false without provider")
	}
}

func TestRenderQuiz_RejectsMalformedJSON(t *testing.T) {
	if _, err := renderQuiz("not json"); err == nil {
		t.Fatal("expected error for malformed quiz JSON")
	}
}
