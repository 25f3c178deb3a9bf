package editor

import (
	"context"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/observability"
	"github.com/matzehuels/tabgrid/pkg/settings"
)

// recorder is a Surface that remembers what it was told.
type recorder struct {
	mu     sync.Mutex
	areas  []string
	aligns map[widget.ID]layout.Align
}

func (r *recorder) ApplyGrid(areas string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.areas = append(r.areas, areas)
}

func (r *recorder) ApplyAlign(id widget.ID, a layout.Align) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.aligns == nil {
		r.aligns = map[widget.ID]layout.Align{}
	}
	r.aligns[id] = a
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.areas) == 0 {
		return ""
	}
	return r.areas[len(r.areas)-1]
}

// clock is a manually advanced time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func open(t *testing.T, store settings.Store) (*Session, *recorder, *clock) {
	t.Helper()
	r := &recorder{}
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s, err := Open(context.Background(), store, Options{
		Surface: r,
		Logger:  log.New(io.Discard),
		Clock:   c.now,
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s, r, c
}

func editing(t *testing.T, sel widget.ID) (*Session, *recorder) {
	t.Helper()
	s, r, _ := open(t, settings.NewMemoryStore())
	s.StartEditing()
	if sel != "" {
		if err := s.Select(sel); err != nil {
			t.Fatalf("Select(%s): %v", sel, err)
		}
	}
	return s, r
}

func wantCode(t *testing.T, err error, code errors.Code) {
	t.Helper()
	if got := errors.GetCode(err); got != code {
		t.Fatalf("error = %v, want code %s", err, code)
	}
}

func TestOpenShowsLayout(t *testing.T) {
	s, r, _ := open(t, settings.NewMemoryStore())

	if got := r.last(); got != "'time' 'main' 'quicklinks'" {
		t.Errorf("surface grid = %q", got)
	}
	if len(r.aligns) != len(widget.All) {
		t.Errorf("surface got %d alignments, want %d", len(r.aligns), len(widget.All))
	}
	if s.Editing() || s.Selected() != "" {
		t.Error("a new session should not be editing")
	}
	if s.Density() != layout.Single {
		t.Errorf("Density() = %s", s.Density())
	}
}

func TestSelect(t *testing.T) {
	s, _, _ := open(t, settings.NewMemoryStore())

	wantCode(t, s.Select(widget.Time), errors.ErrCodeNotEditing)

	s.StartEditing()
	wantCode(t, s.Select("weather"), errors.ErrCodeInvalidWidget)
	wantCode(t, s.Select(widget.Notes), errors.ErrCodeNotFound)

	if err := s.Select(widget.Main); err != nil {
		t.Fatalf("Select(main): %v", err)
	}
	if s.Selected() != widget.Main {
		t.Errorf("Selected() = %s", s.Selected())
	}

	s.Deselect()
	if s.Selected() != "" {
		t.Error("Deselect should clear the selection")
	}

	_ = s.Select(widget.Main)
	s.StopEditing()
	if s.Selected() != "" || s.Editing() {
		t.Error("StopEditing should clear the selection")
	}
}

func TestOperationsNeedSelection(t *testing.T) {
	s, _ := editing(t, "")

	wantCode(t, s.Move(0, 1), errors.ErrCodeNoSelection)
	wantCode(t, s.ToggleSpan(grid.AxisRow), errors.ErrCodeNoSelection)
	wantCode(t, s.AlignBox(layout.BoxStart), errors.ErrCodeNoSelection)
	wantCode(t, s.AlignText(layout.TextLeft), errors.ErrCodeNoSelection)

	_, err := s.Bounds()
	wantCode(t, err, errors.ErrCodeNoSelection)
	_, err = s.Spans()
	wantCode(t, err, errors.ErrCodeNoSelection)
	_, err = s.SpanControls()
	wantCode(t, err, errors.ErrCodeNoSelection)
	_, err = s.Align()
	wantCode(t, err, errors.ErrCodeNoSelection)
}

func TestMove(t *testing.T) {
	s, r := editing(t, widget.Main)

	if err := s.Move(0, -1); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if got := s.Areas(); got != "'main' 'time' 'quicklinks'" {
		t.Errorf("Areas() = %s", got)
	}
	if r.last() != s.Areas() {
		t.Errorf("surface = %q, want %q", r.last(), s.Areas())
	}

	b, err := s.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if !b.Top || !b.Left || !b.Right || b.Bottom {
		t.Errorf("Bounds() = %+v", b)
	}

	// Against the top edge nothing changes.
	n := len(r.areas)
	if err := s.Move(0, -1); err != nil {
		t.Fatalf("Move at edge: %v", err)
	}
	if len(r.areas) != n {
		t.Error("a clamped move should not repaint")
	}
}

func TestToggleSpan(t *testing.T) {
	s, _ := editing(t, "")
	wantCode(t, s.SetDensity(layout.Double), "")
	_ = s.Select(widget.Main)

	sc, err := s.SpanControls()
	if err != nil {
		t.Fatal(err)
	}
	want := SpanControls{Col: SpanButton{Enabled: false}, Row: SpanButton{Enabled: true, Selected: true}}
	if sc != want {
		t.Errorf("SpanControls() = %+v, want %+v", sc, want)
	}

	if err := s.ToggleSpan(grid.AxisRow); err != nil {
		t.Fatalf("ToggleSpan(row): %v", err)
	}
	if got := s.Areas(); got != "'time time' 'main .' 'quicklinks quicklinks'" {
		t.Errorf("collapsed = %s", got)
	}

	if err := s.ToggleSpan(grid.AxisCol); err != nil {
		t.Fatalf("ToggleSpan(col): %v", err)
	}
	if got := s.Areas(); got != "'time time' 'main .' 'quicklinks quicklinks'" {
		t.Errorf("blocked column span changed the grid: %s", got)
	}

	wantCode(t, s.ToggleSpan("diagonal"), errors.ErrCodeInvalidAxis)
}

func TestToggleSpanCrossAxis(t *testing.T) {
	s, _ := editing(t, "")
	_ = s.SetDensity(layout.Double)
	_ = s.Select(widget.Time)

	wantCode(t, s.ToggleSpan(grid.AxisCol), errors.ErrCodeUnsupported)
}

func TestToggleSpanIsItsOwnInverse(t *testing.T) {
	s, _ := editing(t, "")
	_ = s.SetDensity(layout.Triple)
	_ = s.Select(widget.Main)
	before := s.Areas()

	if err := s.ToggleSpan(grid.AxisRow); err != nil {
		t.Fatal(err)
	}
	if got := s.Areas(); got != "'. time .' 'main main main' '. quicklinks .'" {
		t.Errorf("spanned = %s", got)
	}
	if err := s.ToggleSpan(grid.AxisRow); err != nil {
		t.Fatal(err)
	}
	if got := s.Areas(); got != before {
		t.Errorf("after two toggles = %s, want %s", got, before)
	}
}

func TestToggleSpanUnsupportedInSingle(t *testing.T) {
	s, _ := editing(t, widget.Time)
	wantCode(t, s.ToggleSpan(grid.AxisCol), errors.ErrCodeUnsupported)

	sc, err := s.SpanControls()
	if err != nil {
		t.Fatal(err)
	}
	if sc != (SpanControls{}) {
		t.Errorf("single density controls = %+v, want all disabled", sc)
	}
}

func TestAlign(t *testing.T) {
	s, r := editing(t, widget.Quicklinks)

	if a, _ := s.Align(); a.Box != layout.Center || a.Text != layout.Center {
		t.Errorf("default Align() = %+v", a)
	}

	if err := s.AlignBox(layout.BoxEnd); err != nil {
		t.Fatal(err)
	}
	if err := s.AlignText(layout.TextRight); err != nil {
		t.Fatal(err)
	}
	wantCode(t, s.AlignBox("left"), errors.ErrCodeInvalidAlign)
	wantCode(t, s.AlignText("start"), errors.ErrCodeInvalidAlign)

	want := layout.Align{Box: layout.BoxEnd, Text: layout.TextRight}
	if a, _ := s.Align(); a != want {
		t.Errorf("Align() = %+v, want %+v", a, want)
	}
	if r.aligns[widget.Quicklinks] != want {
		t.Errorf("surface alignment = %+v", r.aligns[widget.Quicklinks])
	}

	if err := s.AlignText(""); err != nil {
		t.Fatal(err)
	}
	if a, _ := s.Align(); a.Text != layout.Center {
		t.Errorf("cleared text alignment = %q, want center", a.Text)
	}
}

func TestSetDensity(t *testing.T) {
	s, r := editing(t, widget.Time)

	wantCode(t, s.SetDensity("quad"), errors.ErrCodeInvalidDensity)

	if err := s.ToggleWidget(widget.Notes, true); err != nil {
		t.Fatal(err)
	}
	if got := s.Areas(); got != "'time' 'main' 'quicklinks' 'notes'" {
		t.Errorf("after adding notes = %s", got)
	}

	_ = s.Select(widget.Time)
	if err := s.SetDensity(layout.Double); err != nil {
		t.Fatal(err)
	}
	if s.Density() != layout.Double {
		t.Errorf("Density() = %s", s.Density())
	}
	if r.last() != "'time time' 'main main' 'quicklinks quicklinks'" {
		t.Errorf("surface = %q", r.last())
	}
	for _, id := range s.Enabled() {
		if id == widget.Notes {
			t.Error("notes is not in the double grid and should be disabled")
		}
	}
	if s.Selected() != widget.Time {
		t.Error("selection present in the new grid should survive")
	}

	// Back to single: notes is still in that grid and comes back.
	if err := s.SetDensity(layout.Single); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, id := range s.Enabled() {
		found = found || id == widget.Notes
	}
	if !found {
		t.Error("notes should be enabled again in single")
	}
}

func TestSetDensityDropsMissingSelection(t *testing.T) {
	s, _ := editing(t, "")
	_ = s.ToggleWidget(widget.Quotes, true)
	_ = s.Select(widget.Quotes)

	if err := s.SetDensity(layout.Triple); err != nil {
		t.Fatal(err)
	}
	if s.Selected() != "" {
		t.Errorf("Selected() = %s, want none", s.Selected())
	}
}

func TestToggleWidget(t *testing.T) {
	s, _ := editing(t, widget.Main)

	wantCode(t, s.ToggleWidget("weather", true), errors.ErrCodeInvalidWidget)

	if err := s.ToggleWidget(widget.Main, false); err != nil {
		t.Fatal(err)
	}
	if got := s.Areas(); got != "'time' 'quicklinks'" {
		t.Errorf("after removing main = %s", got)
	}
	if s.Selected() != "" {
		t.Error("ToggleWidget should clear the selection")
	}

	if err := s.ToggleWidget(widget.Searchbar, true); err != nil {
		t.Fatal(err)
	}
	if got := s.Areas(); got != "'time' 'quicklinks' 'searchbar'" {
		t.Errorf("after adding searchbar = %s", got)
	}
}

func TestResetLayout(t *testing.T) {
	s, r := editing(t, widget.Quicklinks)
	_ = s.Move(0, -2)
	_ = s.AlignBox(layout.BoxStart)

	if err := s.ResetLayout(); err != nil {
		t.Fatal(err)
	}
	if got := s.Areas(); got != "'time' 'main' 'quicklinks'" {
		t.Errorf("after reset = %s", got)
	}
	if len(s.Layout().Items) != 0 {
		t.Errorf("alignments should be cleared, got %v", s.Layout().Items)
	}
	if (r.aligns[widget.Quicklinks] != layout.Align{}) {
		t.Errorf("surface alignment = %+v, want cleared", r.aligns[widget.Quicklinks])
	}
	if s.Selected() != "" {
		t.Error("reset should clear the selection")
	}
}

func TestRequestReset(t *testing.T) {
	s, _, c := open(t, settings.NewMemoryStore())
	s.StartEditing()
	_ = s.Select(widget.Time)
	_ = s.Move(0, 1)
	moved := s.Areas()

	if ok, err := s.RequestReset(); ok || err != nil {
		t.Fatalf("first RequestReset() = %v, %v; want false", ok, err)
	}
	c.advance(2 * time.Second)
	if ok, _ := s.RequestReset(); ok {
		t.Fatal("a request after the window should only arm")
	}
	if s.Areas() != moved {
		t.Fatal("arming should not change the grid")
	}
	c.advance(500 * time.Millisecond)
	if ok, _ := s.RequestReset(); !ok {
		t.Fatal("a request within the window should reset")
	}
	if got := s.Areas(); got != "'time' 'main' 'quicklinks'" {
		t.Errorf("after confirmed reset = %s", got)
	}
	if ok, _ := s.RequestReset(); ok {
		t.Error("a confirmed reset should disarm")
	}
}

func TestChangesArePersisted(t *testing.T) {
	store := settings.NewMemoryStore()
	ctx := context.Background()

	s, _, _ := open(t, store)
	s.StartEditing()
	_ = s.Select(widget.Main)
	_ = s.Move(0, -1)
	_ = s.AlignText(layout.TextLeft)
	_ = s.ToggleWidget(widget.Notes, true)
	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}

	doc, err := store.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	l := doc.Move.Layout()
	if got := grid.String(l.Grid); got != "'main' 'time' 'quicklinks' 'notes'" {
		t.Errorf("stored grid = %s", got)
	}
	if l.Align(widget.Main).Text != layout.TextLeft {
		t.Errorf("stored alignment = %+v", l.Align(widget.Main))
	}
	if !doc.Widgets[widget.Notes] {
		t.Error("stored notes flag should be on")
	}

	reopened, _, _ := open(t, store)
	if reopened.Areas() != "'main' 'time' 'quicklinks' 'notes'" {
		t.Errorf("reopened session = %s", reopened.Areas())
	}
}

func TestMutationHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	h := &hooks{}
	observability.SetEditorHooks(h)

	s, _ := editing(t, widget.Time)
	_ = s.Move(0, 1)
	_ = s.ToggleSpan(grid.AxisRow)

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.ops) != 2 || h.ops[0] != "move:time:ok" || h.ops[1] != "span:time:UNSUPPORTED" {
		t.Errorf("hook ops = %v", h.ops)
	}
}

func TestConcurrentEdits(t *testing.T) {
	s, _ := editing(t, "")
	_ = s.SetDensity(layout.Triple)
	_ = s.Select(widget.Main)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Move([]int{-1, 1}[i%2], 0)
			_ = s.View()
		}(i)
	}
	wg.Wait()

	if err := grid.Validate(s.Layout().Grid); err != nil {
		t.Errorf("grid invalid after concurrent moves: %v", err)
	}
}

type hooks struct {
	observability.NoopEditorHooks
	mu  sync.Mutex
	ops []string
}

func (h *hooks) OnMutation(_ context.Context, op, w string, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	status := "ok"
	if err != nil {
		status = string(errors.GetCode(err))
	}
	h.ops = append(h.ops, op+":"+w+":"+status)
}

// faulty is a Surface that panics on grid updates while armed.
type faulty struct {
	recorder
	armed bool
}

func (f *faulty) ApplyGrid(areas string) {
	f.recorder.mu.Lock()
	armed := f.armed
	f.recorder.mu.Unlock()
	if armed {
		panic("surface unavailable")
	}
	f.recorder.ApplyGrid(areas)
}

func (f *faulty) arm(on bool) {
	f.recorder.mu.Lock()
	defer f.recorder.mu.Unlock()
	f.armed = on
}

func TestPanickingEditReleasesSession(t *testing.T) {
	f := &faulty{}
	s, err := Open(context.Background(), settings.NewMemoryStore(), Options{Surface: f, Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	s.StartEditing()
	_ = s.Select(widget.Main)

	f.arm(true)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Move through a panicking surface did not panic")
			}
		}()
		_ = s.Move(0, -1)
	}()
	f.arm(false)

	done := make(chan error, 1)
	go func() {
		_ = s.Layout()
		done <- s.Move(0, 1)
		s.StopEditing()
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Move after a failed edit: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("session still locked after a failed edit")
	}
}

func TestMoveHugeDeltas(t *testing.T) {
	s, _ := editing(t, widget.Time)

	if err := s.Move(0, math.MaxInt); err != nil {
		t.Fatalf("Move(0, MaxInt): %v", err)
	}
	if got := s.Areas(); got != "'main' 'quicklinks' 'time'" {
		t.Errorf("after Move(0, MaxInt) = %s", got)
	}
	if err := s.Move(math.MinInt, math.MinInt); err != nil {
		t.Fatalf("Move(MinInt, MinInt): %v", err)
	}
	if got := s.Areas(); got != "'time' 'quicklinks' 'main'" {
		t.Errorf("after Move(MinInt, MinInt) = %s", got)
	}
}

func TestConcurrentEditsPersistInOrder(t *testing.T) {
	store := settings.NewMemoryStore()
	s, _, _ := open(t, store)
	s.StartEditing()
	_ = s.Select(widget.Main)

	boxes := []string{layout.BoxStart, layout.Center, layout.BoxEnd}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.AlignBox(boxes[i%len(boxes)])
		}(i)
	}
	wg.Wait()

	want := s.Layout().Align(widget.Main).Box
	if err := s.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	doc, err := store.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Move.Layout().Align(widget.Main).Box; got != want {
		t.Errorf("stored box = %q, session box = %q", got, want)
	}
}
