package editor

import (
	"time"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/errors"
	"github.com/matzehuels/tabgrid/pkg/settings"
)

// Move shifts the selected widget by dx columns and dy rows (see grid.Move).
// Deltas beyond the grid edges are clamped.
func (s *Session) Move(dx, dy int) error {
	return s.mutate("move", func() (widget.ID, settings.Patch, error) {
		id, err := s.requireSelection()
		if err != nil {
			return "", settings.Patch{}, err
		}

		l := s.doc.Move.Layout()
		g, err := grid.Move(l.Grid, string(id), dx, dy)
		if err != nil {
			return id, settings.Patch{}, gridError(err, id)
		}
		if g.Equal(l.Grid) {
			return id, settings.Patch{}, nil
		}

		l.Grid = g
		s.surface.ApplyGrid(grid.String(g))
		s.logger.Debug("moved widget", "widget", id, "dx", dx, "dy", dy)
		return id, s.commit(l), nil
	})
}

// ToggleSpan spans or collapses the selected widget along axis. A widget
// collapsed right after spanning returns to the cell it spanned from.
func (s *Session) ToggleSpan(axis grid.Axis) error {
	return s.mutate("span", func() (widget.ID, settings.Patch, error) {
		id, err := s.requireSelection()
		if err != nil {
			return "", settings.Patch{}, err
		}
		if err := errors.ValidateAxis(string(axis)); err != nil {
			return id, settings.Patch{}, err
		}
		d := s.doc.Move.Selection
		if !d.CanSpan() {
			return id, settings.Patch{}, errors.New(errors.ErrCodeUnsupported, "spanning is not available in the %s layout", d)
		}

		l := s.doc.Move.Layout()
		var keep *grid.Position
		if a := s.anchor; a != nil && a.density == d && a.id == id && a.areas == grid.String(l.Grid) {
			keep = &a.pos
		}

		before := grid.Spans(l.Grid, string(id))
		g, err := grid.ToggleSpanAt(l.Grid, string(id), axis, keep)
		if err != nil {
			return id, settings.Patch{}, gridError(err, id)
		}

		s.anchor = nil
		if !before.Col && !before.Row {
			if ps := grid.Find(l.Grid, string(id)); len(ps) > 0 {
				s.anchor = &spanAnchor{density: d, id: id, areas: grid.String(g), pos: ps[0]}
			}
		}

		l.Grid = g
		s.surface.ApplyGrid(grid.String(g))
		s.logger.Debug("toggled span", "widget", id, "axis", axis)
		return id, s.commit(l), nil
	})
}

// AlignBox sets how the selected widget is placed inside its area. The empty
// string restores the default.
func (s *Session) AlignBox(v string) error {
	return s.align("align-box", v, errors.ValidateBoxAlign, func(a *layout.Align) { a.Box = v })
}

// AlignText sets the text alignment of the selected widget. The empty
// string restores the default.
func (s *Session) AlignText(v string) error {
	return s.align("align-text", v, errors.ValidateTextAlign, func(a *layout.Align) { a.Text = v })
}

func (s *Session) align(op, v string, validate func(string) error, set func(*layout.Align)) error {
	return s.mutate(op, func() (widget.ID, settings.Patch, error) {
		id, err := s.requireSelection()
		if err != nil {
			return "", settings.Patch{}, err
		}
		if err := validate(v); err != nil {
			return id, settings.Patch{}, err
		}

		l := s.doc.Move.Layout()
		a := l.Align(id)
		set(&a)
		l.SetAlign(id, a)
		s.surface.ApplyAlign(id, a)
		s.logger.Debug("aligned widget", "widget", id, "op", op, "value", v)
		return id, s.commit(l), nil
	})
}

// SetDensity makes d the active density. Every widget's enabled flag follows
// its presence in d's grid. The selection survives only if the widget is in
// that grid.
func (s *Session) SetDensity(d layout.Density) error {
	return s.mutate("density", func() (widget.ID, settings.Patch, error) {
		if err := errors.ValidateDensity(string(d)); err != nil {
			return "", settings.Patch{}, err
		}
		if d == s.doc.Move.Selection {
			return "", settings.Patch{}, nil
		}

		s.doc.Move.Selection = d
		l := s.doc.Move.Layout()
		flags := make(map[widget.ID]bool, len(widget.All))
		for _, id := range widget.All {
			flags[id] = l.Has(id)
			s.doc.Widgets[id] = flags[id]
		}
		if s.selected != "" && !l.Has(s.selected) {
			s.selected = ""
		}

		s.showAll()
		s.logger.Debug("changed density", "density", d)
		m := s.doc.Move.Clone()
		return "", settings.Patch{Move: &m, Widgets: flags}, nil
	})
}

// ToggleWidget adds id to, or removes it from, the active grid and records
// its enabled flag. The selection is cleared.
func (s *Session) ToggleWidget(id widget.ID, on bool) error {
	return s.mutate("widget", func() (widget.ID, settings.Patch, error) {
		if err := errors.ValidateWidget(string(id)); err != nil {
			return id, settings.Patch{}, err
		}

		l := s.doc.Move.Layout()
		if on {
			l.Grid = grid.Add(l.Grid, string(id), s.doc.Move.Selection.Columns())
		} else {
			l.Grid = grid.Remove(l.Grid, string(id))
		}
		s.doc.Widgets[id] = on
		s.selected = ""

		p := s.commit(l)
		p.Widgets = map[widget.ID]bool{id: on}
		s.showAll()
		s.logger.Debug("toggled widget", "widget", id, "on", on)
		return id, p, nil
	})
}

// ResetLayout rebuilds the active grid from the enabled widgets in
// canonical order and clears its alignments and the selection.
func (s *Session) ResetLayout() error {
	return s.mutate("reset", func() (widget.ID, settings.Patch, error) {
		return "", s.reset(), nil
	})
}

func (s *Session) reset() settings.Patch {
	d := s.doc.Move.Selection
	l := layout.Rebuild(d, s.doc.Enabled())
	s.selected = ""
	s.anchor = nil
	p := s.commit(l)
	s.showAll()
	s.logger.Debug("reset layout", "density", d)
	return p
}

// RequestReset is the two-step reset. The first call arms the reset and
// returns false; a second call within ResetConfirmWindow performs it and
// returns true. An expired request arms again.
func (s *Session) RequestReset() (bool, error) {
	var done bool
	err := s.mutate("reset", func() (widget.ID, settings.Patch, error) {
		now := s.now()
		if !s.armedAt.IsZero() && now.Sub(s.armedAt) <= ResetConfirmWindow {
			s.armedAt = time.Time{}
			done = true
			return "", s.reset(), nil
		}
		s.armedAt = now
		return "", settings.Patch{}, nil
	})
	return done, err
}
