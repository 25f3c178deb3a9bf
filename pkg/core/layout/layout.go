package layout

import (
	"maps"
	"slices"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
)

// Layout is the grid of one density and the alignments of its widgets.
type Layout struct {
	Grid  grid.Grid           `json:"grid" bson:"grid"`
	Items map[widget.ID]Align `json:"items" bson:"items"`
}

// Empty returns a layout with no rows and no alignments.
func Empty() Layout {
	return Layout{Grid: grid.Grid{}, Items: map[widget.ID]Align{}}
}

// Clone returns a deep copy. Nil fields come back empty, never nil.
func (l Layout) Clone() Layout {
	out := Empty()
	if l.Grid != nil {
		out.Grid = l.Grid.Clone()
	}
	maps.Copy(out.Items, l.Items)
	return out
}

// Align returns the stored alignment of id; unset fields stay empty.
func (l Layout) Align(id widget.ID) Align {
	return l.Items[id]
}

// SetAlign stores the alignment of id.
func (l *Layout) SetAlign(id widget.ID, a Align) {
	if l.Items == nil {
		l.Items = map[widget.ID]Align{}
	}
	l.Items[id] = a
}

// Widgets returns the known widgets present in the grid, in row-major order
// of first appearance.
func (l Layout) Widgets() []widget.ID {
	var out []widget.ID
	for _, cell := range grid.Widgets(l.Grid) {
		if id := widget.ID(cell); id.Valid() {
			out = append(out, id)
		}
	}
	return out
}

// Has reports whether id occupies a cell.
func (l Layout) Has(id widget.ID) bool {
	return grid.Contains(l.Grid, string(id))
}

// Rebuild lays out the enabled widgets from scratch for density d. Widgets
// are added in canonical order ([widget.All]), each taking the next free cell.
func Rebuild(d Density, enabled []widget.ID) Layout {
	l := Empty()
	for _, id := range widget.All {
		if slices.Contains(enabled, id) {
			l.Grid = grid.Add(l.Grid, string(id), d.Columns())
		}
	}
	return l
}

// normalize repairs a stored layout: malformed grids are padded, cells with
// unknown widgets are cleared, and alignments of unknown widgets are dropped.
func (l Layout) normalize() Layout {
	out := l.Clone()
	for r, row := range out.Grid {
		for c, cell := range row {
			if cell != grid.Empty && !widget.ID(cell).Valid() {
				out.Grid[r][c] = grid.Empty
			}
		}
	}
	out.Grid = grid.Normalize(out.Grid)
	for id, a := range out.Items {
		if !id.Valid() || !ValidBox(a.Box) || !ValidText(a.Text) {
			delete(out.Items, id)
		}
	}
	return out
}
