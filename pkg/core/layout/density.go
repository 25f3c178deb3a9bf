package layout

import "fmt"

// Density selects how many columns the grid is laid out with.
type Density string

// Supported densities.
const (
	Single Density = "single"
	Double Density = "double"
	Triple Density = "triple"
)

// Densities lists every density, narrowest first.
var Densities = []Density{Single, Double, Triple}

// Columns returns the number of grid columns for d, or 0 for an unknown
// density.
func (d Density) Columns() int {
	switch d {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	}
	return 0
}

// Valid reports whether d is a known density.
func (d Density) Valid() bool { return d.Columns() > 0 }

// CanSpan reports whether span controls are offered for d. They are hidden
// for a single column.
func (d Density) CanSpan() bool { return d == Double || d == Triple }

// ParseDensity converts s into a Density.
func ParseDensity(s string) (Density, error) {
	d := Density(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown density %q", s)
	}
	return d, nil
}
