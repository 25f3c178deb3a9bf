package editor

import (
	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/settings"
)

// SpanButton is the state of one span toggle.
type SpanButton struct {
	Enabled  bool `json:"enabled"`
	Selected bool `json:"selected"`
}

// SpanControls is the state of the column and row span toggles.
type SpanControls struct {
	Col SpanButton `json:"col"`
	Row SpanButton `json:"row"`
}

// Bounds reports the grid edges the selected widget touches.
func (s *Session) Bounds() (grid.Bounds, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.requireSelection()
	if err != nil {
		return grid.Bounds{}, err
	}
	return grid.Boundaries(s.doc.Move.Layout().Grid, string(id)), nil
}

// Spans reports along which axes the selected widget spans.
func (s *Session) Spans() (grid.SpanState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.requireSelection()
	if err != nil {
		return grid.SpanState{}, err
	}
	return grid.Spans(s.doc.Move.Layout().Grid, string(id)), nil
}

// SpanControls reports the span toggles for the selected widget. While one
// axis spans, the other toggle is disabled. Nothing is enabled in the single
// density.
func (s *Session) SpanControls() (SpanControls, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.requireSelection()
	if err != nil {
		return SpanControls{}, err
	}
	return spanControls(s.doc.Move, id), nil
}

func spanControls(m layout.Move, id widget.ID) SpanControls {
	if !m.Selection.CanSpan() {
		return SpanControls{}
	}
	st := grid.Spans(m.Layout().Grid, string(id))
	return SpanControls{
		Col: SpanButton{Enabled: !st.Row, Selected: st.Col},
		Row: SpanButton{Enabled: !st.Col, Selected: st.Row},
	}
}

// Align returns the selected widget's alignment with defaults filled in.
func (s *Session) Align() (layout.Align, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.requireSelection()
	if err != nil {
		return layout.Align{}, err
	}
	return s.doc.Move.Layout().Align(id).Resolved(), nil
}

// Layout returns a copy of the active layout.
func (s *Session) Layout() layout.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Move.Layout()
}

// Density returns the active density.
func (s *Session) Density() layout.Density {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Move.Selection
}

// Enabled returns the enabled widgets in canonical order.
func (s *Session) Enabled() []widget.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Enabled()
}

// Areas returns the active grid in template-areas form.
func (s *Session) Areas() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return grid.String(s.doc.Move.Layout().Grid)
}

// Settings returns a copy of the session's settings document.
func (s *Session) Settings() *settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// View is a consistent snapshot of everything a toolbox displays. The
// selection fields are nil when no widget is selected.
type View struct {
	Density  layout.Density             `json:"density"`
	Editing  bool                       `json:"editing"`
	Areas    string                     `json:"areas"`
	Grid     grid.Grid                  `json:"grid"`
	Items    map[widget.ID]layout.Align `json:"items"`
	Enabled  []widget.ID                `json:"enabled"`
	Selected widget.ID                  `json:"selected,omitempty"`
	Bounds   *grid.Bounds               `json:"bounds,omitempty"`
	Spans    *SpanControls              `json:"spans,omitempty"`
	Align    *layout.Align              `json:"align,omitempty"`
}

// View returns a snapshot of the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.doc.Move.Layout()
	v := View{
		Density: s.doc.Move.Selection,
		Editing: s.editing,
		Areas:   grid.String(l.Grid),
		Grid:    l.Grid,
		Items:   l.Items,
		Enabled: s.doc.Enabled(),
	}
	if id := s.selected; id != "" {
		b := grid.Boundaries(l.Grid, string(id))
		sc := spanControls(s.doc.Move, id)
		a := l.Align(id).Resolved()
		v.Selected, v.Bounds, v.Spans, v.Align = id, &b, &sc, &a
	}
	return v
}
