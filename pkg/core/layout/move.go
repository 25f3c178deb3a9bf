package layout

import "github.com/matzehuels/tabgrid/pkg/core/grid"

// Move is the layout state of the new-tab page: one layout per density and
// the density on display.
type Move struct {
	Selection Density            `json:"selection" bson:"selection"`
	Layouts   map[Density]Layout `json:"layouts" bson:"layouts"`
}

// Layout returns a copy of the active density's layout, or an empty layout
// when none is stored.
func (m Move) Layout() Layout {
	return m.LayoutFor(m.Selection)
}

// LayoutFor returns a copy of the layout stored for d, or an empty layout.
func (m Move) LayoutFor(d Density) Layout {
	l, ok := m.Layouts[d]
	if !ok {
		return Empty()
	}
	return l.Clone()
}

// SetLayout replaces the layout of d. The selection is left unchanged.
func (m *Move) SetLayout(d Density, l Layout) {
	if m.Layouts == nil {
		m.Layouts = map[Density]Layout{}
	}
	m.Layouts[d] = l.Clone()
}

// Clone returns a deep copy.
func (m Move) Clone() Move {
	out := Move{Selection: m.Selection, Layouts: make(map[Density]Layout, len(m.Layouts))}
	for d, l := range m.Layouts {
		out.Layouts[d] = l.Clone()
	}
	return out
}

// Normalize repairs state loaded from storage: an unknown selection becomes
// Single, unknown densities are dropped and every layout is normalized.
func (m Move) Normalize() Move {
	out := Move{Selection: m.Selection, Layouts: map[Density]Layout{}}
	if !out.Selection.Valid() {
		out.Selection = Single
	}
	for d, l := range m.Layouts {
		if d.Valid() {
			out.Layouts[d] = l.normalize()
		}
	}
	return out
}

// DefaultMove returns the layout state of fresh settings.
func DefaultMove() Move {
	m := Move{Selection: Single}
	for _, d := range Densities {
		m.SetLayout(d, DefaultLayout(d))
	}
	return m
}

var defaultGrids = map[Density]string{
	Single: "'time' 'main' 'quicklinks'",
	Double: "'time time' 'main main' 'quicklinks quicklinks'",
	Triple: "'. time .' '. main .' '. quicklinks .'",
}

// DefaultLayout returns the layout fresh settings use for d. Unknown
// densities get an empty layout.
func DefaultLayout(d Density) Layout {
	l := Empty()
	if text, ok := defaultGrids[d]; ok {
		l.Grid = grid.Parse(text)
	}
	return l
}
