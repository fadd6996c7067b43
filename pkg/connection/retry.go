package connection

import (
	"context"
	"errors"
	"time"
)

// ErrNoAttempts is returned by Retry when attempts is less than one.
var ErrNoAttempts = errors.New("no attempts allowed")

// AttemptFunc performs one attempt.
type AttemptFunc func(ctx context.Context) error

// Retry calls fn up to attempts times, sleeping b.Next() between failures.
// It returns nil on the first success, ctx.Err() if ctx ends while waiting,
// or the last attempt's error. onRetry, if non-nil, is called before each
// wait with the failed attempt number, the delay and the error.
func Retry(ctx context.Context, attempts int, b *Backoff, fn AttemptFunc, onRetry func(attempt int, delay time.Duration, err error)) error {
	if attempts < 1 {
		return ErrNoAttempts
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(ctx); err == nil {
			b.Reset()
			return nil
		}
		if attempt == attempts {
			break
		}

		delay := b.Next()
		if onRetry != nil {
			onRetry(attempt, delay, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
