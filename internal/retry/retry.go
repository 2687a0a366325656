package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy bounds a retry sequence: up to MaxAttempts invocations with a fixed
// Delay between them. No jitter, no backoff, no per-error differentiation.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Do runs op up to p.MaxAttempts times, waiting p.Delay between attempts.
// The first success wins. If every attempt fails, the last error is returned
// unchanged so callers can still classify the root cause.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if p.MaxAttempts < 1 {
		return zero, fmt.Errorf("retry: max attempts must be at least 1, got %d", p.MaxAttempts)
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == p.MaxAttempts {
			break
		}

		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
