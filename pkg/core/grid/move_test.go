package grid

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name   string
		grid   string
		id     string
		dx, dy int
		want   string
	}{
		{"swap right", "'A B' 'C D'", "A", 1, 0, "'B A' 'C D'"},
		{"grow downward", "'A B'", "A", 0, 1, "'. B' 'A .'"},
		{"collapse affected span", "'A A' 'B C'", "C", -1, -1, "'C .' 'B A'"},
		{"left edge is a no-op", "'A B'", "A", -1, 0, "'A B'"},
		{"top edge is a no-op", "'A B' 'C D'", "B", 0, -1, "'A B' 'C D'"},
		{"zero delta", "'A B'", "B", 0, 0, "'A B'"},
		{"row span moves as a unit", "'A A .' 'B C D'", "A", 1, 0, "'. A A' 'B C D'"},
		{"row span moves down", "'A A' 'B C'", "A", 0, 1, "'B C' 'A A'"},
		{"column span moves down", "'A B' 'A C'", "A", 0, 1, "'. B' 'A C' 'A .'"},
		{"column span moves right", "'A B' 'A C'", "A", 1, 0, "'B A' 'C A'"},
		{"displaced span collapses", "'A B' 'C C'", "A", 0, 1, "'C B' 'A .'"},
		{"large delta clamps", "'A . .'", "A", 5, 0, "'. . A'"},
		{"large downward delta compacts", "'A B'", "A", 0, 3, "'. B' 'A .'"},
		{"huge downward delta", "'A B'", "A", 0, 1_000_000, "'. B' 'A .'"},
		{"max int downward delta", "'A B' 'C D'", "C", 0, math.MaxInt, "'A B' '. D' 'C .'"},
		{"max int diagonal delta", "'A B' 'C D'", "A", math.MaxInt, math.MaxInt, "'. B' 'C D' '. A'"},
		{"min int deltas", "'A B' 'C D'", "D", math.MinInt, math.MinInt, "'D B' 'C A'"},
		{"swap down", "'A' 'B'", "A", 0, 1, "'B' 'A'"},
		{"sole occupant of last row", "'B .' 'A .'", "A", 0, 1, "'B .' 'A .'"},
		{"up into empty cell leaves empty row", "'. B' 'A .'", "A", 0, -1, "'A B'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Parse(tt.grid)
			got, err := Move(g, tt.id, tt.dx, tt.dy)
			if err != nil {
				t.Fatalf("Move() error: %v", err)
			}
			if s := String(got); s != tt.want {
				t.Errorf("Move() = %s, want %s", s, tt.want)
			}
			if s := String(g); s != String(Parse(tt.grid)) {
				t.Errorf("Move() modified its input: %s", s)
			}
		})
	}
}

func TestMoveErrors(t *testing.T) {
	if _, err := Move(Parse("'A B'"), "Z", 1, 0); !errors.Is(err, ErrNotInGrid) {
		t.Errorf("Move(absent) error = %v, want ErrNotInGrid", err)
	}
	if _, err := Move(Grid{}, "A", 1, 0); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("Move(empty) error = %v, want ErrEmptyGrid", err)
	}
}

func TestMoveGrowsWithGridWidth(t *testing.T) {
	g := Parse("'. A .'")
	got, err := Move(g, "A", 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	// The new row has the grid's width; the old row is then empty and dropped.
	if s := String(got); s != "'. A .'" {
		t.Errorf("Move() = %s", s)
	}

	g = Parse("'B A .'")
	got, _ = Move(g, "A", 0, 1)
	if s := String(got); s != "'B . .' '. A .'" {
		t.Errorf("Move() = %s", s)
	}
}

func TestMoveHugeDeltaIsCheap(t *testing.T) {
	start := time.Now()
	got, err := Move(Parse("'A B'"), "A", 0, 20_000_000)
	if err != nil {
		t.Fatal(err)
	}
	if s := String(got); s != "'. B' 'A .'" {
		t.Errorf("Move() = %s", s)
	}
	if d := time.Since(start); d > time.Second {
		t.Errorf("Move() with a huge delta took %s", d)
	}
}
