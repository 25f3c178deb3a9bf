package grid

import (
	"errors"
	"fmt"
	"strings"
)

const (
	quote     = '\''
	cellSep   = " "
	separator = " \t\r\n"
)

// Parse converts the text form into a grid.
//
// Parse never fails. Rows of unequal length are padded with Empty to the
// widest row; any other malformation (text outside quotes, unterminated or
// empty rows) yields an empty grid.
func Parse(text string) Grid {
	g, err := ParseStrict(text)
	switch {
	case err == nil:
		return g
	case errors.Is(err, ErrRagged):
		return Normalize(g)
	default:
		return Grid{}
	}
}

// ParseStrict converts the text form into a grid and reports malformed input.
// An empty or blank string is an empty grid, not an error.
//
// When the only problem is unequal row lengths, the parsed rows are returned
// together with an error wrapping ErrRagged.
func ParseStrict(text string) (Grid, error) {
	s := strings.Trim(text, separator)
	g := Grid{}

	for len(s) > 0 {
		if s[0] != quote {
			return nil, fmt.Errorf("%w: unexpected %q before row %d", ErrMalformed, s[0], len(g))
		}
		end := strings.IndexByte(s[1:], quote)
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated row %d", ErrMalformed, len(g))
		}
		cells := strings.Fields(s[1 : end+1])
		if len(cells) == 0 {
			return nil, fmt.Errorf("%w: empty row %d", ErrMalformed, len(g))
		}
		g = append(g, cells)
		s = strings.TrimLeft(s[end+2:], separator)
	}

	for i, row := range g {
		if len(row) != g.Width() {
			return g, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRagged, i, len(row), g.Width())
		}
	}
	return g, nil
}

// String converts a grid into its text form. An empty grid is "".
func String(g Grid) string {
	rows := make([]string, len(g))
	for i, row := range g {
		rows[i] = string(quote) + strings.Join(row, cellSep) + string(quote)
	}
	return strings.Join(rows, cellSep)
}

// Validate reports whether g is well-formed: rows of equal, non-zero length
// whose cells are non-empty tokens without quotes or whitespace. An empty
// grid is valid.
func Validate(g Grid) error {
	for i, row := range g {
		if len(row) == 0 {
			return fmt.Errorf("%w: row %d has no cells", ErrMalformed, i)
		}
		if len(row) != g.Width() {
			return fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrRagged, i, len(row), g.Width())
		}
		for j, cell := range row {
			if !validToken(cell) {
				return fmt.Errorf("%w: invalid cell %q at (%d,%d)", ErrMalformed, cell, i, j)
			}
		}
	}
	return nil
}

// Normalize repairs a grid in a new copy: invalid cells become Empty, rows
// are padded to the widest row, and rows left empty are dropped.
func Normalize(g Grid) Grid {
	width := 0
	for _, row := range g {
		width = max(width, len(row))
	}

	out := make(Grid, 0, len(g))
	for _, row := range g {
		fixed := emptyRow(width)
		for j, cell := range row {
			if validToken(cell) {
				fixed[j] = cell
			}
		}
		out = append(out, fixed)
	}
	return Compact(out)
}

func validToken(s string) bool {
	return s != "" && !strings.ContainsAny(s, separator+string(quote))
}
