package grid

// Bounds tells which grid edges a widget touches. A true field means a move
// in that direction would leave the grid unchanged.
type Bounds struct {
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// Boundaries computes the edges touched by id.
//
// Top, Left and Right are true when any cell of the widget sits on the first
// row, first column or last column. Bottom is true when the widget lies
// entirely on the last row and is its only occupant: a move down would add a
// row and compaction would remove the one it left.
//
// An absent widget touches every edge, so every move control is disabled.
func Boundaries(g Grid, id string) Bounds {
	ps := Find(g, id)
	if len(ps) == 0 {
		return Bounds{Top: true, Bottom: true, Left: true, Right: true}
	}

	minRow, _, minCol, maxCol := extent(ps)
	last := len(g) - 1
	occupants := Occupants(g, last)

	return Bounds{
		Top:    minRow == 0,
		Bottom: minRow == last && len(occupants) == 1 && occupants[0] == id,
		Left:   minCol == 0,
		Right:  maxCol == g.Width()-1,
	}
}

// Blocked reports whether a move by (dx, dy) would leave the grid unchanged:
// every non-zero axis of the delta points at a touched edge.
func (b Bounds) Blocked(dx, dy int) bool {
	x := dx == 0 || (dx < 0 && b.Left) || (dx > 0 && b.Right)
	y := dy == 0 || (dy < 0 && b.Top) || (dy > 0 && b.Bottom)
	return x && y
}
