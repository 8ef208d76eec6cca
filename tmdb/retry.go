package tmdb

import (
	"context"
	"time"
)

const (
	// DefaultAttempts is the number of tries a request gets before failing
	DefaultAttempts = 3
	// DefaultDelay is the fixed pause between failed attempts
	DefaultDelay = time.Second
)

// Policy bounds a retry loop: at most Attempts tries with a fixed Delay between
// consecutive failures.
type Policy struct {
	Attempts int
	Delay    time.Duration

	// Sleep pauses between attempts. Nil uses a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultPolicy returns three attempts one second apart
func DefaultPolicy() Policy {
	return Policy{
		Attempts: DefaultAttempts,
		Delay:    DefaultDelay,
	}
}

// AttemptFunc performs one try. attempt is 1-based.
type AttemptFunc[T any] func(ctx context.Context, attempt int) (T, error)

// Retry runs fn until it succeeds or the policy's attempts are used up. The
// first success is returned immediately. After the last failed attempt no delay
// is taken and that attempt's error is returned as is.
func Retry[T any](ctx context.Context, policy Policy, fn AttemptFunc[T]) (T, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := policy.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var (
		zero    T
		lastErr error
	)
	for attempt := 1; attempt <= attempts; attempt++ {
		value, err := fn(ctx, attempt)
		if err == nil {
			return value, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		if err := sleep(ctx, policy.Delay); err != nil {
			return zero, err
		}
	}

	return zero, lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
