package educate

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/educator/internal/generate"
	"github.com/abhisek/educator/internal/history"
	"github.com/abhisek/educator/internal/llm"
)

// ServiceName is the identifier reported by the health endpoint.
const ServiceName = "EducatorAI"

// Service produces educational content. With a provider it asks the LLM;
// without one it falls back to deterministic templates so the app stays
// usable offline.
type Service struct {
	provider llm.Provider // nil when no LLM is configured
	events   history.EventRepo
	logger   *slog.Logger
}

// NewService creates a content generation service. provider and events may
// be nil; a nil provider selects the template fallback, a nil events repo
// disables history recording.
func NewService(provider llm.Provider, events history.EventRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, events: events, logger: logger}
}

// Ready reports whether an LLM provider is configured. Maps to the
// model_loaded field of the health endpoint.
func (s *Service) Ready() bool {
	return s.provider != nil
}

// Health builds the health payload.
func (s *Service) Health() generate.HealthStatus {
	return generate.HealthStatus{
		Status:      "healthy",
		Service:     ServiceName,
		ModelLoaded: s.Ready(),
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// Generate produces content for the request. Generation failures are
// reported in-band: the returned Response has Success false and the error
// message set, matching the wire contract.
func (s *Service) Generate(ctx context.Context, req generate.Request) generate.Response {
	start := time.Now()

	if err := generate.Validate(req); err != nil {
		return s.failure(ctx, req, err.Error(), start)
	}

	var text string
	var source string
	if s.provider == nil {
		text = generate.FromTemplate(req)
		source = "template"
	} else {
		var err error
		text, err = s.generateLLM(ctx, req)
		if err != nil {
			s.logger.Error("generation failed",
				"content_type", req.ContentType,
				"error", err)
			return s.failure(ctx, req, err.Error(), start)
		}
		source = "llm"
	}

	elapsed := time.Since(start)
	s.record(ctx, req, history.GenerationEventData{
		GeneratedText:    text,
		Source:           source,
		Success:          true,
		ProcessingTimeMs: elapsed.Milliseconds(),
	})

	s.logger.Info("content generated",
		"content_type", req.ContentType,
		"source", source,
		"processing_time", elapsed)

	return generate.Response{
		Success:        true,
		GeneratedText:  text,
		Prompt:         req.Prompt,
		Context:        req.Context,
		ContentType:    req.ContentType,
		Parameters:     s.parameters(req),
		ProcessingTime: elapsed.Seconds(),
	}
}

func (s *Service) generateLLM(ctx context.Context, req generate.Request) (string, error) {
	ctx = llm.WithPurpose(ctx, "generate:"+string(req.ContentType))

	llmReq := llm.Request{
		System: generate.SystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: generate.BuildUserMessage(req)},
		},
		MaxTokens:   req.MaxLength,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	}
	if req.ContentType == generate.TypeQuiz {
		llmReq.Schema = QuizSchema
	}

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return "", err
	}

	if req.ContentType == generate.TypeQuiz {
		return renderQuiz(resp.Text)
	}
	return resp.Text, nil
}

func (s *Service) failure(ctx context.Context, req generate.Request, msg string, start time.Time) generate.Response {
	elapsed := time.Since(start)
	s.record(ctx, req, history.GenerationEventData{
		Success:          false,
		ErrorMessage:     msg,
		ProcessingTimeMs: elapsed.Milliseconds(),
	})

	return generate.Response{
		Success:        false,
		Error:          msg,
		Prompt:         req.Prompt,
		Context:        req.Context,
		ContentType:    req.ContentType,
		ProcessingTime: elapsed.Seconds(),
	}
}

// record appends a generation event, filling in the request fields.
// History failures are logged, never surfaced.
func (s *Service) record(ctx context.Context, req generate.Request, data history.GenerationEventData) {
	if s.events == nil {
		return
	}
	data.Prompt = req.Prompt
	data.Context = req.ContextText()
	data.ContentType = string(req.ContentType)
	if err := s.events.AppendGeneration(ctx, data); err != nil {
		s.logger.Warn("failed to record generation event", "error", err)
	}
}

func (s *Service) parameters(req generate.Request) map[string]any {
	return map[string]any{
		"max_length":  req.MaxLength,
		"temperature": req.Temperature,
		"top_p":       req.TopP,
	}
}
