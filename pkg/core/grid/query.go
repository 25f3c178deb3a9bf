package grid

import "slices"

// Find returns every cell holding id, in row-major order.
func Find(g Grid, id string) []Position {
	var out []Position
	for r, row := range g {
		for c, cell := range row {
			if cell == id {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Contains reports whether id occupies at least one cell.
func Contains(g Grid, id string) bool {
	for _, row := range g {
		if slices.Contains(row, id) {
			return true
		}
	}
	return false
}

// IsRowEmpty reports whether every cell of the row is Empty.
// Rows outside the grid are not empty.
func IsRowEmpty(g Grid, row int) bool {
	if row < 0 || row >= len(g) {
		return false
	}
	for _, cell := range g[row] {
		if cell != Empty {
			return false
		}
	}
	return true
}

// HasDuplicate reports whether id appears more than once in a row or column
// slice, which means the widget spans that line.
func HasDuplicate(line []string, id string) bool {
	n := 0
	for _, cell := range line {
		if cell == id {
			n++
			if n > 1 {
				return true
			}
		}
	}
	return false
}

// Row returns a copy of row r, or nil when r is out of range.
func Row(g Grid, r int) []string {
	if r < 0 || r >= len(g) {
		return nil
	}
	return slices.Clone(g[r])
}

// Column returns the cells of column c from top to bottom, or nil when c is
// out of range.
func Column(g Grid, c int) []string {
	if c < 0 || c >= g.Width() {
		return nil
	}
	out := make([]string, len(g))
	for r := range g {
		out[r] = g[r][c]
	}
	return out
}

// Widgets lists the distinct widgets in the grid by first appearance in
// row-major order.
func Widgets(g Grid) []string {
	var out []string
	for _, row := range g {
		for _, cell := range row {
			if cell != Empty && !slices.Contains(out, cell) {
				out = append(out, cell)
			}
		}
	}
	return out
}

// Occupants lists the distinct widgets of one row in column order.
func Occupants(g Grid, row int) []string {
	if row < 0 || row >= len(g) {
		return nil
	}
	return Widgets(Grid{g[row]})
}

// BottomRow returns the index of the last row holding a widget, or -1.
func BottomRow(g Grid) int {
	for r := len(g) - 1; r >= 0; r-- {
		if !IsRowEmpty(g, r) {
			return r
		}
	}
	return -1
}

// extent returns the bounding rows and columns of a set of positions.
func extent(ps []Position) (minRow, maxRow, minCol, maxCol int) {
	minRow, minCol = ps[0].Row, ps[0].Col
	maxRow, maxCol = minRow, minCol
	for _, p := range ps[1:] {
		minRow = min(minRow, p.Row)
		maxRow = max(maxRow, p.Row)
		minCol = min(minCol, p.Col)
		maxCol = max(maxCol, p.Col)
	}
	return minRow, maxRow, minCol, maxCol
}
