package grid

import (
	"slices"
	"testing"
)

func TestFindRowMajor(t *testing.T) {
	g := Parse("'a b a' 'a c .'")
	got := Find(g, "a")
	want := []Position{{0, 0}, {0, 2}, {1, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("Find() = %v, want %v", got, want)
	}
	if Find(g, "z") != nil {
		t.Error("Find() of absent widget should be nil")
	}
	if !Contains(g, "c") || Contains(g, "z") {
		t.Error("Contains() mismatch")
	}
}

func TestIsRowEmpty(t *testing.T) {
	g := Parse("'a .' '. .'")
	if IsRowEmpty(g, 0) {
		t.Error("row 0 holds a widget")
	}
	if !IsRowEmpty(g, 1) {
		t.Error("row 1 should be empty")
	}
	if IsRowEmpty(g, 2) || IsRowEmpty(g, -1) {
		t.Error("rows outside the grid are not empty")
	}
}

func TestHasDuplicate(t *testing.T) {
	tests := []struct {
		line []string
		want bool
	}{
		{[]string{"a", "a"}, true},
		{[]string{"a", "b", "a"}, true},
		{[]string{"a", "b"}, false},
		{[]string{".", "."}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasDuplicate(tt.line, "a"); got != tt.want {
			t.Errorf("HasDuplicate(%v) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestRowAndColumn(t *testing.T) {
	g := Parse("'a b' 'c d'")
	if got := Column(g, 1); !slices.Equal(got, []string{"b", "d"}) {
		t.Errorf("Column(1) = %v", got)
	}
	row := Row(g, 0)
	row[0] = "z"
	if g[0][0] != "a" {
		t.Error("Row() should return a copy")
	}
	if Row(g, 5) != nil || Column(g, 5) != nil {
		t.Error("out of range lines should be nil")
	}
}

func TestWidgetsAndBottomRow(t *testing.T) {
	g := Parse("'. time time' 'main . notes' '. . .'")
	if got := Widgets(g); !slices.Equal(got, []string{"time", "main", "notes"}) {
		t.Errorf("Widgets() = %v", got)
	}
	if got := BottomRow(g); got != 1 {
		t.Errorf("BottomRow() = %d, want 1", got)
	}
	if got := BottomRow(Grid{}); got != -1 {
		t.Errorf("BottomRow(empty) = %d, want -1", got)
	}
	if got := Occupants(g, 1); !slices.Equal(got, []string{"main", "notes"}) {
		t.Errorf("Occupants(1) = %v", got)
	}
}
