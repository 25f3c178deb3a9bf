package settings

import (
	"context"
	stderrors "errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	transient := &RetryableError{Err: stderrors.New("connection refused")}
	fatal := stderrors.New("bad uri")

	tests := []struct {
		name      string
		attempts  int
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{"success first try", 3, nil, 1, nil},
		{"recovers", 3, []error{transient, transient}, 3, nil},
		{"gives up", 2, []error{transient, transient, transient}, 2, transient},
		{"fatal is not retried", 3, []error{fatal}, 1, fatal},
		{"zero attempts means one", 0, []error{transient}, 1, transient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), tt.attempts, time.Millisecond, func() error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if err != tt.wantErr {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRetryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 5, time.Hour, func() error {
		return &RetryableError{Err: stderrors.New("down")}
	})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestOpenDoesNotRetryConfigErrors(t *testing.T) {
	start := time.Now()
	_, err := Open(context.Background(), Options{
		Backend:         BackendRedis,
		Profile:         "default",
		ConnectAttempts: 5,
		RetryDelay:      time.Second,
	})
	if err == nil {
		t.Fatal("redis without address should fail")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("a missing address should not be retried")
	}
}
