package grid

import "fmt"

// SpanState tells along which axes a widget currently spans.
type SpanState struct {
	// Col is true when the widget occupies several rows of its column.
	Col bool `json:"col"`
	// Row is true when the widget occupies several columns of its row.
	Row bool `json:"row"`
}

// Spans reports the span state of id, measured through its first cell.
// An absent widget spans nothing.
func Spans(g Grid, id string) SpanState {
	ps := Find(g, id)
	if len(ps) == 0 {
		return SpanState{}
	}
	first := ps[0]
	return SpanState{
		Col: HasDuplicate(Column(g, first.Col), id),
		Row: HasDuplicate(Row(g, first.Row), id),
	}
}

// ToggleSpan is ToggleSpanAt without a preferred cell: a collapse keeps the
// first cell in row-major order.
func ToggleSpan(g Grid, id string, axis Axis) (Grid, error) {
	return ToggleSpanAt(g, id, axis, nil)
}

// ToggleSpanAt flips the span of id along axis and returns the result.
//
// If the widget spans that axis, it collapses to a single cell: keep when
// keep is one of its cells, else its first cell. Rows left empty are dropped.
//
// Otherwise the widget extends from its cell in both directions along the
// line, over Empty cells, up to the grid edge or the first cell of another
// widget. Foreign cells are never overwritten.
//
// A widget that already spans the other axis cannot span this one and gets
// ErrCrossSpan.
func ToggleSpanAt(g Grid, id string, axis Axis, keep *Position) (Grid, error) {
	if axis != AxisCol && axis != AxisRow {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAxis, axis)
	}
	ps := Find(g, id)
	if len(ps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotInGrid, id)
	}

	state := Spans(g, id)
	spanning, crossing := state.Col, state.Row
	if axis == AxisRow {
		spanning, crossing = state.Row, state.Col
	}

	out := g.Clone()
	if spanning {
		anchor := ps[0]
		if keep != nil && out.At(*keep) == id {
			anchor = *keep
		}
		collapse(out, id, anchor)
		return Compact(out), nil
	}
	if crossing {
		return nil, fmt.Errorf("%w: %s spans %s", ErrCrossSpan, id, other(axis))
	}

	extend(out, id, ps[0], axis)
	return out, nil
}

// CollapseSpan reduces id to its first cell and drops rows left empty.
func CollapseSpan(g Grid, id string) Grid {
	out := g.Clone()
	if ps := Find(out, id); len(ps) > 1 {
		collapse(out, id, ps[0])
	}
	return Compact(out)
}

// extend fills Empty cells outward from origin along axis, in place.
func extend(g Grid, id string, origin Position, axis Axis) {
	dr, dc := 1, 0
	if axis == AxisRow {
		dr, dc = 0, 1
	}
	for _, sign := range []int{-1, 1} {
		p := Position{Row: origin.Row + sign*dr, Col: origin.Col + sign*dc}
		for g.contains(p) {
			cell := g[p.Row][p.Col]
			if cell != Empty && cell != id {
				break
			}
			g[p.Row][p.Col] = id
			p.Row += sign * dr
			p.Col += sign * dc
		}
	}
}

func other(axis Axis) Axis {
	if axis == AxisCol {
		return AxisRow
	}
	return AxisCol
}
