package generate

import (
	"encoding/json"
	"testing"
)

// The wire body for a bare form submission: context travels as an explicit
// JSON null, and the numeric defaults are filled in.
func TestRequestWireBody(t *testing.T) {
	req := NewRequest("Explain photosynthesis", TypeExplanation, "")

	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	if body["prompt"] != "Explain photosynthesis" {
		t.Errorf("unexpected prompt: %v", body["prompt"])
	}
	if body["content_type"] != "explanation" {
		t.Errorf("unexpected content_type: %v", body["content_type"])
	}
	ctx, present := body["context"]
	if !present {
		t.Error("context field must be present in the body")
	}
	if ctx != nil {
		t.Errorf("empty context must serialize as null, got %v", ctx)
	}
	if body["max_length"] != float64(512) {
		t.Errorf("expected max_length 512, got %v", body["max_length"])
	}
	if body["temperature"] != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", body["temperature"])
	}
}

func TestRequestWireBodyWithContext(t *testing.T) {
	req := NewRequest("Explain photosynthesis", TypeQuiz, "for a biology class")

	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	if body["context"] != "for a biology class" {
		t.Errorf("unexpected context: %v", body["context"])
	}
}
