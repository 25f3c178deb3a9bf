package settings

import (
	"context"
	stderrors "errors"
	"time"
)

// DefaultRetryDelay is the first pause between connection attempts.
const DefaultRetryDelay = 500 * time.Millisecond

// RetryableError marks a failure worth another attempt, such as a refused
// connection while a server is still starting. [Retry] only retries errors
// that wrap one.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry executes fn up to attempts times with exponential backoff.
// Errors that do not wrap a [RetryableError] are returned immediately. The
// delay doubles after each failed attempt. Returns the last error if all
// attempts fail, or ctx.Err() if cancelled.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	return stderrors.As(err, new(*RetryableError))
}
