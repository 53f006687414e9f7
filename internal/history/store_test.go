package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "educator.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndListGenerations(t *testing.T) {
	store := openTestStore(t)
	ctx := t.Context()

	require.NoError(t, store.AppendGeneration(ctx, GenerationEventData{
		Prompt:           "What is gravity",
		ContentType:      "explanation",
		GeneratedText:    "Gravity is a force.",
		Source:           "llm",
		Success:          true,
		ProcessingTimeMs: 840,
	}))
	require.NoError(t, store.AppendGeneration(ctx, GenerationEventData{
		Prompt:       "Broken one",
		ContentType:  "quiz",
		Source:       "llm",
		Success:      false,
		ErrorMessage: "rate limited",
	}))

	events, err := store.ListGenerations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	for _, e := range events {
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())
	}
}

func TestListGenerationsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := t.Context()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.AppendGeneration(ctx, GenerationEventData{
			Prompt: "p", ContentType: "summary", Source: "template", Success: true,
		}))
	}

	events, err := store.ListGenerations(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestLLMRequestRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := t.Context()

	require.NoError(t, store.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5",
		Purpose:      "generate:explanation",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    950,
		Success:      true,
		RequestBody:  `{"system":"..."}`,
		ResponseBody: `{"text":"..."}`,
	}))

	list, err := store.ListLLMRequests(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "generate:explanation", list[0].Purpose)
	// Bodies are omitted from the list query.
	assert.Empty(t, list[0].RequestBody)

	// Lookup by unique ID prefix returns the full record.
	got, err := store.GetLLMRequest(ctx, list[0].ID[:8])
	require.NoError(t, err)
	assert.Equal(t, list[0].ID, got.ID)
	assert.Equal(t, `{"system":"..."}`, got.RequestBody)
	assert.Equal(t, `{"text":"..."}`, got.ResponseBody)
}

func TestGetLLMRequestNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetLLMRequest(t.Context(), "deadbeef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLLMStats(t *testing.T) {
	store := openTestStore(t)
	ctx := t.Context()

	require.NoError(t, store.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "generate:quiz",
		InputTokens: 100, OutputTokens: 400, LatencyMs: 800, Success: true,
	}))
	require.NoError(t, store.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "generate:quiz",
		InputTokens: 50, OutputTokens: 0, LatencyMs: 200, Success: false,
		ErrorMessage: "rate limited",
	}))
	require.NoError(t, store.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "generate:lesson",
		InputTokens: 200, OutputTokens: 600, LatencyMs: 500, Success: true,
	}))

	stats, err := store.LLMStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Requests)
	assert.EqualValues(t, 1, stats.Failures)
	assert.EqualValues(t, 350, stats.InputTokens)
	assert.EqualValues(t, 1000, stats.OutputTokens)
	require.Len(t, stats.ByModel, 2)
	// Sorted by request count, most used first.
	assert.Equal(t, "claude-haiku-4-5", stats.ByModel[0].Model)
	assert.EqualValues(t, 2, stats.ByModel[0].Requests)
}

func TestReset(t *testing.T) {
	store := openTestStore(t)
	ctx := t.Context()

	require.NoError(t, store.AppendGeneration(ctx, GenerationEventData{
		Prompt: "p", ContentType: "definition", Source: "llm", Success: true,
	}))
	require.NoError(t, store.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "generate:definition", Success: true,
	}))

	require.NoError(t, store.Reset())

	gens, err := store.ListGenerations(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, gens)

	reqs, err := store.ListLLMRequests(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("EDUCATOR_DB", custom)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, custom, p)

	// Parent directory is created.
	assert.DirExists(t, filepath.Dir(custom))
}
