package notify

import (
	"context"
	"time"
)

// Retry runs fn up to attempts times with exponential backoff between
// attempts: initial, then doubling, capped at max. It returns nil on the
// first success, the last error once attempts are exhausted, or ctx.Err()
// if the context is cancelled while waiting.
func Retry(ctx context.Context, attempts int, initial, max time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	d := initial
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return ctx.Err()
			}
			d *= 2
			if d > max {
				d = max
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
