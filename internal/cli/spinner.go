package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a status line until halted or its context ends. Only the
// animation goroutine writes to out.
type spinner struct {
	out     io.Writer
	message string
	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func startSpinner(ctx context.Context, out io.Writer, message string) *spinner {
	s := &spinner{
		out:     out,
		message: message,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer close(s.stopped)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		frame := spinnerFrames[i%len(spinnerFrames)]
		fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
		select {
		case <-ctx.Done():
			s.clear()
			return
		case <-s.stop:
			s.clear()
			return
		case <-ticker.C:
		}
	}
}

func (s *spinner) clear() {
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(s.message)+2))
}

// halt stops the animation and waits until the line is cleared. It is safe
// to call more than once.
func (s *spinner) halt() {
	s.once.Do(func() { close(s.stop) })
	<-s.stopped
}

// spin runs fn behind a spinner on stderr and returns its error. The line is
// cleared before spin returns, so callers can print right after.
func spin(ctx context.Context, message string, fn func() error) error {
	s := startSpinner(ctx, os.Stderr, message)
	defer s.halt()
	return fn()
}
