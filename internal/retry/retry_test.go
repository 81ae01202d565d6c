package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoStopsOnSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Policy{Attempts: 5, BaseDelay: time.Millisecond}, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDoReturnsLastError(t *testing.T) {
	last := errors.New("still down")
	var retried []int
	err := Do(context.Background(), Policy{Attempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond},
		func(ctx context.Context) error { return last },
		func(attempt int, err error, wait time.Duration) {
			retried = append(retried, attempt)
			if wait > 2*time.Millisecond {
				t.Fatalf("wait %s exceeds max delay", wait)
			}
		})
	if !errors.Is(err, last) {
		t.Fatalf("expected last error, got %v", err)
	}
	if len(retried) != 2 {
		t.Fatalf("expected 2 retry notifications, got %v", retried)
	}
}

func TestDoHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, Policy{Attempts: 3, BaseDelay: time.Second}, func(ctx context.Context) error {
		calls++
		return nil
	}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("fn should not run on canceled context")
	}
}
