// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retry provides a bounded-attempt retry decorator with exponential
// backoff. Wrapping an operation here keeps retry policy out of the
// components that perform the work.
package retry

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pdiddy/docdigest/pkg/types"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 100 * time.Millisecond
	maxBackoff         = 5 * time.Second
)

// Do runs op, retrying on errors that shouldRetry classifies as transient.
// The delay before attempt n doubles from the policy's base, with jitter,
// capped at 5 s. Non-transient errors return immediately; the last error is
// returned after exhausting attempts. A nil shouldRetry never retries.
// If the context is cancelled during a backoff wait, ctx.Err() is returned.
func Do[T any](ctx context.Context, p types.RetryConfig, shouldRetry func(error) bool, op func() (T, error)) (T, error) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	base := p.BaseDelay
	if base <= 0 {
		base = defaultBaseDelay
	}

	var zero T
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		lastErr = err

		if shouldRetry == nil || !shouldRetry(err) || attempt == attempts-1 {
			return zero, lastErr
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(Backoff(attempt, base)):
		}
	}
	return zero, lastErr
}

// Backoff returns the delay before retrying attempt n (0-indexed): base
// doubled per attempt plus up to 50% jitter, capped at 5 s.
func Backoff(attempt int, base time.Duration) time.Duration {
	d := time.Duration(1<<uint(attempt)) * base
	if d > maxBackoff {
		d = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(d)/2 + 1))
	return d + jitter
}
