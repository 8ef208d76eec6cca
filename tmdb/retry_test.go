package tmdb

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSleep counts pauses without waiting
type recordingSleep struct {
	delays []time.Duration
}

func (r *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return ctx.Err()
}

func TestRetry_SucceedsOnThirdAttempt(t *testing.T) {
	rec := &recordingSleep{}
	policy := Policy{Attempts: 3, Delay: time.Second, Sleep: rec.sleep}

	var calls []int
	value, err := Retry(context.Background(), policy, func(ctx context.Context, attempt int) (string, error) {
		calls = append(calls, attempt)
		if attempt < 3 {
			return "", &APIError{StatusCode: 503}
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", value)
	assert.Equal(t, []int{1, 2, 3}, calls)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, rec.delays)
}

func TestRetry_FirstSuccessShortCircuits(t *testing.T) {
	rec := &recordingSleep{}
	policy := Policy{Attempts: 3, Delay: time.Second, Sleep: rec.sleep}

	calls := 0
	value, err := Retry(context.Background(), policy, func(ctx context.Context, attempt int) (int, error) {
		calls++
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, calls)
	assert.Empty(t, rec.delays)
}

func TestRetry_ExhaustedReturnsLastErrorUnchanged(t *testing.T) {
	rec := &recordingSleep{}
	policy := Policy{Attempts: 3, Delay: 250 * time.Millisecond, Sleep: rec.sleep}

	errs := []error{
		errors.New("first"),
		errors.New("second"),
		&APIError{StatusCode: 429, Message: "Too Many Requests"},
	}

	_, err := Retry(context.Background(), policy, func(ctx context.Context, attempt int) (struct{}, error) {
		return struct{}{}, errs[attempt-1]
	})

	require.Error(t, err)
	assert.Same(t, errs[2], err)
	assert.Len(t, rec.delays, 2)
}

func TestRetry_AttemptBounds(t *testing.T) {
	tests := []struct {
		attempts  int
		wantCalls int
	}{
		{attempts: 0, wantCalls: 1},
		{attempts: 1, wantCalls: 1},
		{attempts: 5, wantCalls: 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempts=%d", tt.attempts), func(t *testing.T) {
			rec := &recordingSleep{}
			calls := 0
			_, err := Retry(context.Background(), Policy{Attempts: tt.attempts, Sleep: rec.sleep},
				func(ctx context.Context, attempt int) (int, error) {
					calls++
					return 0, errors.New("boom")
				})
			require.Error(t, err)
			assert.Equal(t, tt.wantCalls, calls)
			assert.Len(t, rec.delays, tt.wantCalls-1)
		})
	}
}

func TestRetry_CancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	policy := Policy{Attempts: 3, Delay: time.Hour}

	calls := 0
	_, err := Retry(ctx, policy, func(ctx context.Context, attempt int) (int, error) {
		calls++
		cancel()
		return 0, errors.New("boom")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetry_RealDelayIsFixed(t *testing.T) {
	policy := Policy{Attempts: 3, Delay: 10 * time.Millisecond}

	start := time.Now()
	_, err := Retry(context.Background(), policy, func(ctx context.Context, attempt int) (int, error) {
		return 0, errors.New("boom")
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 3, p.Attempts)
	assert.Equal(t, time.Second, p.Delay)
	assert.Nil(t, p.Sleep)
}
