package grid

import "slices"

// Add places id into the grid and returns the result.
//
// The widget takes the first Empty cell in row-major order. When there is
// none, a row is appended with the widget in column (columns-1)/2. An empty
// grid starts with the given number of columns; otherwise the grid keeps its
// width. Adding a widget that is already present returns an unchanged copy.
func Add(g Grid, id string, columns int) Grid {
	out := g.Clone()
	if Contains(out, id) {
		return out
	}

	for r, row := range out {
		for c, cell := range row {
			if cell == Empty {
				out[r][c] = id
				return out
			}
		}
	}

	width := out.Width()
	if width == 0 {
		width = max(columns, 1)
	}
	row := emptyRow(width)
	row[min((columns-1)/2, width-1)] = id
	return append(out, row)
}

// Remove clears every cell of id and drops rows left empty.
func Remove(g Grid, id string) Grid {
	out := g.Clone()
	for _, p := range Find(out, id) {
		out[p.Row][p.Col] = Empty
	}
	return Compact(out)
}

// Compact returns the rows of g that hold at least one widget, as a fresh
// grid. Row order is preserved.
func Compact(g Grid) Grid {
	out := make(Grid, 0, len(g))
	for r, row := range g {
		if !IsRowEmpty(g, r) {
			out = append(out, slices.Clone(row))
		}
	}
	return out
}
