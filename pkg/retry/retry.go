// Package retry provides a best-effort fixed-delay retry helper.
//
// It deliberately has no backoff or jitter: the suite retries flaky
// browser conditions a configured number of times and otherwise fails
// loudly. Retry budgets live in config, not in call sites.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Do calls fn up to attempts times, sleeping delay between failures.
// It returns nil on the first success, or the last error wrapped with
// the attempt count after exhaustion.
func Do(attempts int, delay time.Duration, fn func() error) error {
	return DoContext(context.Background(), attempts, delay, fn)
}

// DoContext is Do with cancellation. A canceled context stops retrying
// and returns the context error (wrapping the last fn error if any).
func DoContext(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("%w (last error: %w)", err, lastErr)
			}
			return err
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		if i < attempts-1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
