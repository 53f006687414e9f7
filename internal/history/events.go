package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventRepo records and queries generation history. The Store implements
// it; consumers depend on the interface so tests can substitute a fake.
type EventRepo interface {
	AppendGeneration(ctx context.Context, data GenerationEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	ListGenerations(ctx context.Context, limit int) ([]GenerationEvent, error)
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)
	GetLLMRequest(ctx context.Context, id string) (*LLMRequestEvent, error)
	LLMStats(ctx context.Context) (*LLMStats, error)
}

// GenerationEventData is the payload for one completed (or failed)
// generation, as seen by the user.
type GenerationEventData struct {
	Prompt           string
	Context          string
	ContentType      string
	GeneratedText    string
	Source           string // "llm" or "template"
	Success          bool
	ErrorMessage     string
	ProcessingTimeMs int64
}

// GenerationEvent is a stored generation record.
type GenerationEvent struct {
	ID        string
	CreatedAt time.Time
	GenerationEventData
}

// LLMRequestEventData is the payload for one raw LLM request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request record.
type LLMRequestEvent struct {
	ID        string
	CreatedAt time.Time
	LLMRequestEventData
}

// LLMStats aggregates token usage across all recorded LLM requests.
type LLMStats struct {
	Requests     int64
	Failures     int64
	InputTokens  int64
	OutputTokens int64
	AvgLatencyMs float64
	ByModel      []ModelStats
}

// ModelStats is per-model token usage.
type ModelStats struct {
	Model        string
	Requests     int64
	InputTokens  int64
	OutputTokens int64
}

var _ EventRepo = (*Store)(nil)

// AppendGeneration records one generation run.
func (s *Store) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generation_events
			(id, prompt, context, content_type, generated_text, source, success, error_message, processing_time_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), data.Prompt, data.Context, data.ContentType,
		data.GeneratedText, data.Source, data.Success, data.ErrorMessage,
		data.ProcessingTimeMs,
	)
	if err != nil {
		return fmt.Errorf("append generation event: %w", err)
	}
	return nil
}

// AppendLLMRequest records one raw LLM request.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append LLM request event: %w", err)
	}
	return nil
}

// ListGenerations returns the most recent generations, newest first.
func (s *Store) ListGenerations(ctx context.Context, limit int) ([]GenerationEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, prompt, context, content_type, generated_text, source, success, error_message, processing_time_ms
		 FROM generation_events ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list generation events: %w", err)
	}
	defer rows.Close()

	var out []GenerationEvent
	for rows.Next() {
		var ev GenerationEvent
		if err := rows.Scan(&ev.ID, &ev.CreatedAt, &ev.Prompt, &ev.Context,
			&ev.ContentType, &ev.GeneratedText, &ev.Source, &ev.Success,
			&ev.ErrorMessage, &ev.ProcessingTimeMs); err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// ListLLMRequests returns the most recent LLM requests, newest first.
// Request and response bodies are omitted; use GetLLMRequest for those.
func (s *Store) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_request_events ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list LLM request events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		var ev LLMRequestEvent
		if err := rows.Scan(&ev.ID, &ev.CreatedAt, &ev.Provider, &ev.Model,
			&ev.Purpose, &ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs,
			&ev.Success, &ev.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan LLM request event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// GetLLMRequest loads a single LLM request with its full bodies. The id may
// be a unique prefix of the stored UUID.
func (s *Store) GetLLMRequest(ctx context.Context, id string) (*LLMRequestEvent, error) {
	var ev LLMRequestEvent
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body
		 FROM llm_request_events WHERE id LIKE ? || '%' ORDER BY created_at DESC LIMIT 1`, id).
		Scan(&ev.ID, &ev.CreatedAt, &ev.Provider, &ev.Model, &ev.Purpose,
			&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success,
			&ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("LLM request %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request event: %w", err)
	}
	return &ev, nil
}

// LLMStats aggregates usage across all recorded LLM requests.
func (s *Store) LLMStats(ctx context.Context) (*LLMStats, error) {
	var stats LLMStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0),
			COALESCE(AVG(latency_ms), 0)
		 FROM llm_request_events`).
		Scan(&stats.Requests, &stats.Failures, &stats.InputTokens,
			&stats.OutputTokens, &stats.AvgLatencyMs)
	if err != nil {
		return nil, fmt.Errorf("llm stats: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT model, COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		 FROM llm_request_events GROUP BY model ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("llm stats by model: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ms ModelStats
		if err := rows.Scan(&ms.Model, &ms.Requests, &ms.InputTokens, &ms.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model stats: %w", err)
		}
		stats.ByModel = append(stats.ByModel, ms)
	}
	return &stats, rows.Err()
}
