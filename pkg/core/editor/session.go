package editor

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/observability"
	"github.com/matzehuels/tabgrid/pkg/settings"
)

// ResetConfirmWindow is how long an armed reset waits for its confirmation.
const ResetConfirmWindow = time.Second

// Options configures a Session. Zero values select the defaults.
type Options struct {
	// Surface receives every grid and alignment change. Defaults to
	// NopSurface.
	Surface Surface
	Logger  *log.Logger
	// Clock returns the current time; used by the reset confirmation.
	Clock func() time.Time
	// QueueSize bounds the pending writes (see settings.WriterOptions).
	QueueSize int
}

// Session is one editing context over a settings document.
type Session struct {
	mu       sync.Mutex
	doc      *settings.Settings
	surface  Surface
	writer   *settings.Writer
	logger   *log.Logger
	now      func() time.Time
	editing  bool
	selected widget.ID
	anchor   *spanAnchor
	armedAt  time.Time
}

// spanAnchor remembers the cell a span grew from so collapsing it restores
// the widget to that cell. It is only valid while the grid is unchanged.
type spanAnchor struct {
	density layout.Density
	id      widget.ID
	areas   string
	pos     grid.Position
}

// Open loads the settings from store, displays them on the surface and
// returns a session that is not yet editing.
func Open(ctx context.Context, store settings.Store, opts Options) (*Session, error) {
	doc, err := store.Get(ctx)
	if err != nil {
		return nil, err
	}

	s := &Session{
		doc:     doc,
		surface: opts.Surface,
		logger:  opts.Logger,
		now:     opts.Clock,
	}
	if s.surface == nil {
		s.surface = NopSurface{}
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.writer = settings.NewWriter(store, settings.WriterOptions{
		Logger:    s.logger,
		QueueSize: opts.QueueSize,
	})

	s.mu.Lock()
	s.showAll()
	s.mu.Unlock()
	return s, nil
}

// Close flushes pending writes. The session must not be used afterwards.
func (s *Session) Close(ctx context.Context) error {
	s.StopEditing()
	return s.writer.Close(ctx)
}

// =============================================================================
// Editing and selection
// =============================================================================

// StartEditing enters edit mode with no widget selected.
func (s *Session) StartEditing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.selected = ""
}

// StopEditing leaves edit mode and clears the selection.
func (s *Session) StopEditing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
	s.selected = ""
	s.armedAt = time.Time{}
}

// Editing reports whether the session is in edit mode.
func (s *Session) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

// Select makes id the target of move, span and alignment operations.
func (s *Session) Select(id widget.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing {
		return errors.New(errors.ErrCodeNotEditing, "start editing before selecting a widget")
	}
	if err := errors.ValidateWidget(string(id)); err != nil {
		return err
	}
	if !s.doc.Move.Layout().Has(id) {
		return errors.New(errors.ErrCodeNotFound, "%s is not in the %s layout", id, s.doc.Move.Selection)
	}
	s.selected = id
	s.logger.Debug("selected widget", "widget", id)
	return nil
}

// Deselect clears the selection.
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// Selected returns the selected widget, or "" when none is.
func (s *Session) Selected() widget.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// =============================================================================
// Internals
// =============================================================================

// mutate runs fn under the session lock, enqueues the patch it returns and
// reports the operation to the editor hooks. The patch is enqueued before the
// lock is released, so writes reach the store in the order edits ran.
func (s *Session) mutate(op string, fn func() (widget.ID, settings.Patch, error)) error {
	start := time.Now()
	target, err := s.locked(fn)
	if err != nil {
		s.logger.Debug("edit rejected", "op", op, "widget", target, "err", err)
	}
	observability.Editor().OnMutation(context.Background(), op, string(target), time.Since(start), err)
	return err
}

func (s *Session) locked(fn func() (widget.ID, settings.Patch, error)) (widget.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, patch, err := fn()
	if err == nil && !patch.Empty() {
		s.writer.Enqueue(patch)
	}
	return target, err
}

// requireSelection returns the selected widget or a NO_SELECTION error.
func (s *Session) requireSelection() (widget.ID, error) {
	if s.selected == "" {
		return "", errors.New(errors.ErrCodeNoSelection, "no widget selected")
	}
	return s.selected, nil
}

// commit stores l as the active layout and returns the patch persisting the
// move state.
func (s *Session) commit(l layout.Layout) settings.Patch {
	s.doc.Move.SetLayout(s.doc.Move.Selection, l)
	m := s.doc.Move.Clone()
	return settings.Patch{Move: &m}
}

// showAll pushes the active grid and every widget's alignment.
func (s *Session) showAll() {
	l := s.doc.Move.Layout()
	s.surface.ApplyGrid(grid.String(l.Grid))
	for _, id := range widget.All {
		s.surface.ApplyAlign(id, l.Align(id))
	}
}

// gridError converts an engine error into a coded error.
func gridError(err error, id widget.ID) error {
	switch {
	case stderrors.Is(err, grid.ErrNotInGrid):
		return errors.Wrap(errors.ErrCodeNotFound, err, "%s is not in the grid", id)
	case stderrors.Is(err, grid.ErrEmptyGrid):
		return errors.Wrap(errors.ErrCodeNotFound, err, "the grid is empty")
	case stderrors.Is(err, grid.ErrInvalidAxis):
		return errors.Wrap(errors.ErrCodeInvalidAxis, err, "invalid span axis")
	case stderrors.Is(err, grid.ErrCrossSpan):
		return errors.Wrap(errors.ErrCodeUnsupported, err, "%s already spans the other axis", id)
	}
	return errors.Wrap(errors.ErrCodeInternal, err, "grid update failed")
}
