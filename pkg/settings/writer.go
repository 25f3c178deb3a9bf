package settings

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabgrid/pkg/observability"
)

// Writer defaults.
const (
	DefaultQueueSize    = 16
	DefaultWriteTimeout = 5 * time.Second
)

// WriterOptions configures a Writer. Zero values select the defaults.
type WriterOptions struct {
	Logger       *log.Logger
	QueueSize    int // at least 2
	WriteTimeout time.Duration
	// Backend names the store in logs and hooks.
	Backend string
}

// Writer applies patches to a Store in the background.
//
// A single worker applies patches in the order they were enqueued. When the
// queue is full the two oldest pending patches are merged, so the newest
// state always reaches the store and nothing is applied out of order.
type Writer struct {
	store   Store
	logger  *log.Logger
	timeout time.Duration
	backend string
	limit   int

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Patch
	closed bool
	done   chan struct{}
}

// NewWriter starts a writer for store.
func NewWriter(store Store, opts WriterOptions) *Writer {
	w := &Writer{
		store:   store,
		logger:  opts.Logger,
		timeout: opts.WriteTimeout,
		backend: opts.Backend,
		limit:   opts.QueueSize,
		done:    make(chan struct{}),
	}
	if w.logger == nil {
		w.logger = log.Default()
	}
	if w.timeout <= 0 {
		w.timeout = DefaultWriteTimeout
	}
	if w.limit <= 0 {
		w.limit = DefaultQueueSize
	}
	// Merging needs two pending patches.
	w.limit = max(w.limit, 2)
	if w.backend == "" {
		w.backend = backendName(store)
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// Enqueue schedules p and returns immediately. Patches enqueued after Close
// are dropped with a warning.
func (w *Writer) Enqueue(p Patch) {
	if p.Empty() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		w.logger.Warn("settings writer closed, dropping write", "backend", w.backend)
		return
	}
	if len(w.queue) >= w.limit {
		merged := w.queue[0].Then(w.queue[1])
		w.queue = append([]Patch{merged}, w.queue[2:]...)
		w.logger.Debug("settings queue full, merged pending writes", "backend", w.backend)
	}
	w.queue = append(w.queue, p)
	w.cond.Signal()
}

// Pending returns the number of patches not yet handed to the store.
func (w *Writer) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.queue)
}

// Close stops accepting patches and waits until the queue has drained or
// ctx is done.
func (w *Writer) Close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.closed {
			w.cond.Wait()
		}
		if len(w.queue) == 0 {
			w.mu.Unlock()
			return
		}
		p := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		w.write(p)
	}
}

func (w *Writer) write(p Patch) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.store.Set(ctx, p); err != nil {
		w.logger.Error("settings write failed", "backend", w.backend, "err", err)
		observability.Store().OnWriteError(ctx, w.backend, err)
		return
	}
	w.logger.Debug("settings written", "backend", w.backend, "took", time.Since(start).Round(time.Millisecond))
}

func backendName(s Store) string {
	if b, ok := s.(interface{ Backend() string }); ok {
		return b.Backend()
	}
	return "custom"
}
