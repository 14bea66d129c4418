package notify

import (
	"context"
	"fmt"
	"time"
)

// ===============================
// Dispatch Retrier
// ===============================

const (
	DefaultMaxAttempts = 3

	// Backoff doubles per attempt: 2s after the first failure, 4s after the
	// second. No wait after the final attempt.
	backoffBase = time.Second

	// Each attempt is bounded so a hung delivery can never block a reminder
	// tick indefinitely.
	DefaultAttemptTimeout = 10 * time.Second
)

// Retrier wraps a Notifier with bounded exponential-backoff retry.
type Retrier struct {
	notifier       Notifier
	maxAttempts    int
	attemptTimeout time.Duration

	// sleep is swappable in tests
	sleep func(time.Duration)
}

func NewRetrier(notifier Notifier) *Retrier {
	return &Retrier{
		notifier:       notifier,
		maxAttempts:    DefaultMaxAttempts,
		attemptTimeout: DefaultAttemptTimeout,
		sleep:          time.Sleep,
	}
}

// SendWithRetry attempts delivery up to maxAttempts times (<=0 means the
// configured default). On success it returns the delivery identifier; after
// exhaustion it returns the last error.
func (r *Retrier) SendWithRetry(ctx context.Context, to, subject, body string, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = r.maxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, r.attemptTimeout)
		id, err := r.notifier.Send(attemptCtx, to, subject, body)
		cancel()

		if err == nil {
			return id, nil
		}
		lastErr = err

		if attempt < maxAttempts {
			r.sleep(backoffBase << attempt) // 2s, 4s, ...
		}
	}

	return "", fmt.Errorf("dispatch failed after %d attempts: %w", maxAttempts, lastErr)
}
