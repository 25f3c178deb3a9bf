package grid

import (
	"fmt"
	"slices"
	"sort"
)

// Move shifts every cell of id by dx columns and dy rows and returns the
// resulting grid.
//
// The steps run in a fixed order:
//
//  1. Clamp: dx, and negative dy, are reduced so that every cell of the
//     widget stays inside the grid. Moving against an edge is a no-op on
//     that axis.
//  2. Grow: when a cell would land below the last row, one empty row is
//     appended at the bottom and dy is clamped to reach it. The grid never
//     grows upward or sideways.
//  3. Collect: widgets sitting on the destination cells are affected.
//  4. Collapse: an affected widget that spans several cells is reduced to its
//     first cell, so it is displaced as a whole.
//  5. Swap: each cell of id trades contents with its destination, farthest
//     along the direction of travel first, so a spanning widget moves as a
//     unit.
//  6. Compact: rows left empty are dropped.
//
// Move returns ErrEmptyGrid for a grid without cells and ErrNotInGrid when
// id is absent.
func Move(g Grid, id string, dx, dy int) (Grid, error) {
	if g.Width() == 0 {
		return nil, ErrEmptyGrid
	}
	positions := Find(g, id)
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotInGrid, id)
	}

	out := g.Clone()
	minRow, maxRow, minCol, maxCol := extent(positions)
	dx = clampDelta(dx, minCol, maxCol, out.Width())
	if dy < 0 {
		dy = max(dy, -minRow)
	}
	if dx == 0 && dy == 0 {
		return Compact(out), nil
	}

	if dy > len(out)-1-maxRow {
		out = append(out, emptyRow(out.Width()))
		dy = min(dy, len(out)-1-maxRow)
	}

	var affected []string
	for _, p := range positions {
		cell := out[p.Row+dy][p.Col+dx]
		if cell != Empty && cell != id && !slices.Contains(affected, cell) {
			affected = append(affected, cell)
		}
	}
	for _, other := range affected {
		if ps := Find(out, other); len(ps) > 1 {
			collapse(out, other, ps[0])
		}
	}

	order := slices.Clone(positions)
	sort.SliceStable(order, func(i, j int) bool {
		return travel(order[i], dx, dy) > travel(order[j], dx, dy)
	})
	for _, p := range order {
		r, c := p.Row+dy, p.Col+dx
		out[p.Row][p.Col], out[r][c] = out[r][c], out[p.Row][p.Col]
	}

	return Compact(out), nil
}

// clampDelta limits d so that the span [lo, hi] shifted by d stays within
// [0, size).
func clampDelta(d, lo, hi, size int) int {
	if d > 0 {
		return min(d, size-1-hi)
	}
	return max(d, -lo)
}

// travel projects p onto the direction of movement.
func travel(p Position, dx, dy int) int {
	return p.Row*dy + p.Col*dx
}

// collapse keeps id at keep and clears its other cells, in place.
func collapse(g Grid, id string, keep Position) {
	for _, p := range Find(g, id) {
		if p != keep {
			g[p.Row][p.Col] = Empty
		}
	}
}
