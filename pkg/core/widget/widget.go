// Package widget defines the closed vocabulary of new-tab widgets.
//
// Widget identifiers double as grid cell contents and alignment map keys, so
// they never contain the grid codec separators (quotes or whitespace).
//
// Each widget also maps to two display handles through explicit tables: the
// element id of the widget container ([Handle]) and the id of the settings
// toggle that enables it ([InputHandle]).
package widget

import "fmt"

// ID identifies a widget.
type ID string

// Known widgets, in canonical order.
const (
	Time       ID = "time"
	Main       ID = "main"
	Quicklinks ID = "quicklinks"
	Notes      ID = "notes"
	Quotes     ID = "quotes"
	Searchbar  ID = "searchbar"
)

// All lists every widget in canonical order. Layout resets add widgets in
// this order.
var All = []ID{Time, Main, Quicklinks, Notes, Quotes, Searchbar}

var handles = map[ID]string{
	Time:       "time",
	Main:       "main",
	Quicklinks: "linkblocks",
	Notes:      "notes_container",
	Quotes:     "quotes_container",
	Searchbar:  "sb_container",
}

var inputHandles = map[ID]string{
	Time:       "i_time",
	Main:       "i_main",
	Quicklinks: "i_quicklinks",
	Notes:      "i_notes",
	Quotes:     "i_quotes",
	Searchbar:  "i_sb",
}

// Valid reports whether id is one of the known widgets.
func (id ID) Valid() bool {
	_, ok := handles[id]
	return ok
}

// String returns the identifier as it appears in grids.
func (id ID) String() string { return string(id) }

// Handle returns the element id of the widget container.
// Unknown widgets return the empty string.
func Handle(id ID) string { return handles[id] }

// InputHandle returns the element id of the settings toggle for the widget.
func InputHandle(id ID) string { return inputHandles[id] }

// Parse converts s into a known widget identifier.
func Parse(s string) (ID, error) {
	id := ID(s)
	if !id.Valid() {
		return "", fmt.Errorf("unknown widget %q", s)
	}
	return id, nil
}

// Index returns the canonical position of id in [All], or -1.
func Index(id ID) int {
	for i, w := range All {
		if w == id {
			return i
		}
	}
	return -1
}

// DefaultEnabled reports whether a widget is enabled in fresh settings.
func DefaultEnabled(id ID) bool {
	switch id {
	case Time, Main, Quicklinks:
		return true
	}
	return false
}
