package widget

import "testing"

func TestHandlesAreTotal(t *testing.T) {
	for _, id := range All {
		if Handle(id) == "" {
			t.Errorf("Handle(%q) is empty", id)
		}
		if InputHandle(id) == "" {
			t.Errorf("InputHandle(%q) is empty", id)
		}
	}
}

func TestHandleValues(t *testing.T) {
	tests := []struct {
		id     ID
		handle string
		input  string
	}{
		{Time, "time", "i_time"},
		{Quicklinks, "linkblocks", "i_quicklinks"},
		{Searchbar, "sb_container", "i_sb"},
		{Notes, "notes_container", "i_notes"},
	}
	for _, tt := range tests {
		if got := Handle(tt.id); got != tt.handle {
			t.Errorf("Handle(%q) = %q, want %q", tt.id, got, tt.handle)
		}
		if got := InputHandle(tt.id); got != tt.input {
			t.Errorf("InputHandle(%q) = %q, want %q", tt.id, got, tt.input)
		}
	}
}

func TestParse(t *testing.T) {
	if id, err := Parse("notes"); err != nil || id != Notes {
		t.Errorf("Parse(notes) = %q, %v", id, err)
	}
	for _, bad := range []string{"", ".", "weather", "Time"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) should fail", bad)
		}
	}
}

func TestIndexAndDefaults(t *testing.T) {
	if Index(Time) != 0 || Index(Searchbar) != len(All)-1 {
		t.Error("Index should follow canonical order")
	}
	if Index("nope") != -1 {
		t.Error("Index of unknown widget should be -1")
	}
	if !DefaultEnabled(Main) || DefaultEnabled(Quotes) {
		t.Error("DefaultEnabled mismatch")
	}
}
