// Package css renders a layout as a stylesheet for the new-tab page.
//
// A [Sheet] is an editor surface: it keeps the last grid and alignments it
// was given and prints them as CSS. The grid goes into the --grid custom
// property used by grid-template-areas; each widget's element gets its
// grid-area and, when set, its place-self and text-align.
//
//	sheet := css.NewSheet()
//	s, _ := editor.Open(ctx, store, editor.Options{Surface: sheet})
//	...
//	fmt.Print(sheet.String())
package css

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
)

// Container is the selector of the element holding the widget grid.
const Container = "#interface"

// Sheet is a Surface that renders to CSS. It is safe for concurrent use.
type Sheet struct {
	mu     sync.RWMutex
	areas  string
	aligns map[widget.ID]layout.Align
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{aligns: map[widget.ID]layout.Align{}}
}

// FromLayout returns a sheet showing l.
func FromLayout(l layout.Layout) *Sheet {
	s := NewSheet()
	s.ApplyGrid(grid.String(l.Grid))
	for _, id := range widget.All {
		s.ApplyAlign(id, l.Align(id))
	}
	return s
}

// ApplyGrid implements editor.Surface.
func (s *Sheet) ApplyGrid(areas string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.areas = areas
}

// ApplyAlign implements editor.Surface. An empty alignment removes the
// widget's rules.
func (s *Sheet) ApplyAlign(id widget.ID, a layout.Align) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == (layout.Align{}) {
		delete(s.aligns, id)
		return
	}
	s.aligns[id] = a
}

// Areas returns the grid last applied.
func (s *Sheet) Areas() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.areas
}

// String renders the stylesheet.
func (s *Sheet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

// WriteTo writes the stylesheet to w.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, ":root {\n  --grid: %s;\n}\n\n", s.areas)
	fmt.Fprintf(&b, "%s {\n  display: grid;\n  grid-template-areas: var(--grid);\n}\n", Container)

	present := grid.Widgets(grid.Parse(s.areas))
	for _, id := range widget.All {
		a := s.aligns[id]
		fmt.Fprintf(&b, "\n#%s {\n", widget.Handle(id))
		if slices.Contains(present, string(id)) {
			fmt.Fprintf(&b, "  grid-area: %s;\n", id)
		} else {
			b.WriteString("  display: none;\n")
		}
		if a.Box != "" {
			fmt.Fprintf(&b, "  place-self: %s;\n", a.Box)
		}
		if a.Text != "" {
			fmt.Fprintf(&b, "  text-align: %s;\n", a.Text)
		}
		b.WriteString("}\n")
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
