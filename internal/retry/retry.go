package retry

import (
	"context"
	"time"
)

// Policy bounds a retry loop. Delays double after each failed attempt and are
// capped at MaxDelay when it is set.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// Do runs fn until it succeeds, the attempts are spent or ctx is done.
// onRetry, when non-nil, is told about every failure that will be retried.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error, onRetry func(attempt int, err error, wait time.Duration)) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}

	var err error
	delay := p.BaseDelay

	for i := 0; i < p.Attempts; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err = fn(ctx); err == nil {
			return nil
		}

		if i == p.Attempts-1 {
			break
		}
		if onRetry != nil {
			onRetry(i+1, err, delay)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return err
}
