package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func downstreamUnavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetryTransientErrors(t *testing.T) {
	t.Run("first attempt succeeds", func(t *testing.T) {
		mock := NewMockProvider(MockResponse{Text: "Photosynthesis is the process..."})
		p := WithRetry(mock, fastRetry())

		resp, err := p.Generate(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, "Photosynthesis is the process...", resp.Text)
		assert.Equal(t, 1, mock.CallCount())
	})

	t.Run("recovers after transient failure", func(t *testing.T) {
		mock := NewMockProvider(downstreamUnavailable(), MockResponse{Text: "ok"})
		p := WithRetry(mock, fastRetry())

		resp, err := p.Generate(context.Background(), Request{})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Text)
		assert.Equal(t, 2, mock.CallCount())
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		mock := NewMockProvider(downstreamUnavailable(), downstreamUnavailable(), downstreamUnavailable())
		p := WithRetry(mock, fastRetry())

		_, err := p.Generate(context.Background(), Request{})
		require.Error(t, err)
		assert.Equal(t, 3, mock.CallCount())
	})
}

func TestRetryMaxTokensIsTerminal(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{Text: "partial"}})
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
	assert.Equal(t, 1, mock.CallCount(), "a truncated response should not be retried")
}

func TestRetryInvalidResponseBudget(t *testing.T) {
	// Malformed output gets exactly one more chance; the third queued
	// response is never reached.
	bad := MockResponse{Err: &ErrInvalidResponse{Text: "bad", Err: errors.New("bad")}}
	mock := NewMockProvider(bad, bad, MockResponse{Text: "ok"})
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(downstreamUnavailable(), downstreamUnavailable(), MockResponse{Text: "ok"})
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	assert.Error(t, err)
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Text: "ok"},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	assert.Equal(t, "mock", p.ModelID())
}
