package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSpinnerHalt(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinner(context.Background(), &buf, "Connecting to redis...")
	time.Sleep(2 * spinnerInterval)
	s.halt()
	s.halt()

	out := buf.String()
	if !strings.Contains(out, "Connecting to redis...") {
		t.Errorf("spinner output %q lacks the message", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner output %q does not end with a cleared line", out)
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := startSpinner(ctx, &bytes.Buffer{}, "Rendering svg...")
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner still running after context cancellation")
	}
	s.halt()
}

func TestSpin(t *testing.T) {
	want := errors.New("dial refused")
	calls := 0
	err := spin(context.Background(), "Connecting to mongo...", func() error {
		calls++
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("spin() error = %v, want %v", err, want)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}
