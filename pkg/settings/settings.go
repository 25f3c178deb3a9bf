package settings

import (
	"maps"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
)

// Settings is the persisted settings document of one profile.
type Settings struct {
	Move    layout.Move        `json:"move" bson:"move"`
	Widgets map[widget.ID]bool `json:"widgets" bson:"widgets"`
}

// Default returns the settings of a fresh profile.
func Default() *Settings {
	s := &Settings{Move: layout.DefaultMove(), Widgets: map[widget.ID]bool{}}
	for _, id := range widget.All {
		s.Widgets[id] = widget.DefaultEnabled(id)
	}
	return s
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	out := &Settings{Move: s.Move.Clone(), Widgets: make(map[widget.ID]bool, len(s.Widgets))}
	maps.Copy(out.Widgets, s.Widgets)
	return out
}

// Enabled returns the enabled widgets in canonical order.
func (s *Settings) Enabled() []widget.ID {
	var out []widget.ID
	for _, id := range widget.All {
		if s.Widgets[id] {
			out = append(out, id)
		}
	}
	return out
}

// Normalize repairs a document read from storage. Densities without a
// layout get their default one, grids are made rectangular, unknown widgets
// are dropped and missing widget flags take their defaults.
func (s *Settings) Normalize() *Settings {
	out := &Settings{Move: s.Move.Normalize(), Widgets: map[widget.ID]bool{}}
	for _, d := range layout.Densities {
		if _, ok := out.Move.Layouts[d]; !ok {
			out.Move.SetLayout(d, layout.DefaultLayout(d))
		}
	}
	for _, id := range widget.All {
		on, ok := s.Widgets[id]
		if !ok {
			on = widget.DefaultEnabled(id)
		}
		out.Widgets[id] = on
	}
	return out
}

// Validate reports whether every stored grid is well formed.
func (s *Settings) Validate() error {
	for d, l := range s.Move.Layouts {
		if err := grid.Validate(l.Grid); err != nil {
			return &LayoutError{Density: d, Err: err}
		}
	}
	return nil
}

// LayoutError reports a malformed grid in a stored document.
type LayoutError struct {
	Density layout.Density
	Err     error
}

func (e *LayoutError) Error() string { return string(e.Density) + " layout: " + e.Err.Error() }

func (e *LayoutError) Unwrap() error { return e.Err }

// =============================================================================
// Patches
// =============================================================================

// Patch is a partial update. A nil Move leaves the layouts untouched; widget
// flags are merged key by key.
type Patch struct {
	Move    *layout.Move       `json:"move,omitempty" bson:"move,omitempty"`
	Widgets map[widget.ID]bool `json:"widgets,omitempty" bson:"widgets,omitempty"`
}

// Empty reports whether p changes nothing.
func (p Patch) Empty() bool {
	return p.Move == nil && len(p.Widgets) == 0
}

// Apply returns a copy of s with p applied.
func (s *Settings) Apply(p Patch) *Settings {
	out := s.Clone()
	if p.Move != nil {
		out.Move = p.Move.Clone()
	}
	maps.Copy(out.Widgets, p.Widgets)
	return out
}

// Then returns a single patch equivalent to applying p and then next.
func (p Patch) Then(next Patch) Patch {
	out := Patch{Move: p.Move, Widgets: map[widget.ID]bool{}}
	if next.Move != nil {
		out.Move = next.Move
	}
	maps.Copy(out.Widgets, p.Widgets)
	maps.Copy(out.Widgets, next.Widgets)
	if len(out.Widgets) == 0 {
		out.Widgets = nil
	}
	return out
}

// Snapshot returns a patch that replaces the whole document with s.
func Snapshot(s *Settings) Patch {
	c := s.Clone()
	return Patch{Move: &c.Move, Widgets: c.Widgets}
}
