package editor

import (
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
)

// Surface displays the layout. The session only writes to it; the grid is
// never read back.
type Surface interface {
	// ApplyGrid receives the grid in template-areas form.
	ApplyGrid(areas string)
	// ApplyAlign receives the alignment of one widget. Empty fields mean
	// the default.
	ApplyAlign(id widget.ID, a layout.Align)
}

// NopSurface discards every update.
type NopSurface struct{}

func (NopSurface) ApplyGrid(string)                   {}
func (NopSurface) ApplyAlign(widget.ID, layout.Align) {}

// MultiSurface forwards every update to each surface in order.
type MultiSurface []Surface

func (m MultiSurface) ApplyGrid(areas string) {
	for _, s := range m {
		s.ApplyGrid(areas)
	}
}

func (m MultiSurface) ApplyAlign(id widget.ID, a layout.Align) {
	for _, s := range m {
		s.ApplyAlign(id, a)
	}
}

// Ensure the surfaces implement Surface.
var (
	_ Surface = NopSurface{}
	_ Surface = MultiSurface(nil)
)
