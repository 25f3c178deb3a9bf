package grid

import (
	"errors"
	"fmt"
	"slices"
)

// Empty marks a cell that holds no widget.
const Empty = "."

// Sentinel errors for grid operations.
var (
	// ErrNotInGrid is returned when a widget has no cell in the grid.
	ErrNotInGrid = errors.New("widget not in grid")

	// ErrEmptyGrid is returned when an operation needs at least one cell.
	ErrEmptyGrid = errors.New("grid is empty")

	// ErrCrossSpan is returned when spanning one axis while the widget
	// already spans the other.
	ErrCrossSpan = errors.New("widget already spans the other axis")

	// ErrInvalidAxis is returned for an unknown span axis.
	ErrInvalidAxis = errors.New("invalid span axis")

	// ErrMalformed is returned by ParseStrict and Validate for text or
	// cells that do not follow the grid format.
	ErrMalformed = errors.New("malformed grid")

	// ErrRagged is returned when rows have different lengths.
	ErrRagged = errors.New("grid rows have different lengths")
)

// Grid is a rectangular arrangement of cells, indexed [row][col].
type Grid [][]string

// Position addresses one cell.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Axis selects the direction of a span.
type Axis string

const (
	// AxisCol spans a widget down its column, across rows.
	AxisCol Axis = "col"
	// AxisRow spans a widget along its row, across columns.
	AxisRow Axis = "row"
)

// ParseAxis converts "col" or "row" into an Axis.
func ParseAxis(s string) (Axis, error) {
	switch Axis(s) {
	case AxisCol, AxisRow:
		return Axis(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}

// New returns a grid of the given size filled with Empty.
func New(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = emptyRow(cols)
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the number of columns, taken from the first row.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = slices.Clone(row)
	}
	return out
}

// Equal reports whether both grids have the same cells. A nil grid equals an
// empty one.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if !slices.Equal(g[i], o[i]) {
			return false
		}
	}
	return true
}

// At returns the cell at p, or Empty when p is outside the grid.
func (g Grid) At(p Position) string {
	if !g.contains(p) {
		return Empty
	}
	return g[p.Row][p.Col]
}

// String returns the text form of the grid.
func (g Grid) String() string { return String(g) }

func (g Grid) contains(p Position) bool {
	return p.Row >= 0 && p.Row < len(g) && p.Col >= 0 && p.Col < len(g[p.Row])
}

func emptyRow(n int) []string {
	row := make([]string, n)
	for i := range row {
		row[i] = Empty
	}
	return row
}
