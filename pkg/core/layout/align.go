package layout

// Alignment keywords. The empty string means "not set" and resolves to
// Center.
const (
	Center = "center"

	BoxStart = "start"
	BoxEnd   = "end"

	TextLeft  = "left"
	TextRight = "right"
)

// Align is the placement of a widget inside its grid area (Box) and the
// alignment of its text (Text).
type Align struct {
	Box  string `json:"box" bson:"box"`
	Text string `json:"text" bson:"text"`
}

// Resolved returns a copy with unset fields filled with Center.
func (a Align) Resolved() Align {
	if a.Box == "" {
		a.Box = Center
	}
	if a.Text == "" {
		a.Text = Center
	}
	return a
}

// ValidBox reports whether s is a box keyword or unset.
func ValidBox(s string) bool {
	switch s {
	case "", BoxStart, Center, BoxEnd:
		return true
	}
	return false
}

// ValidText reports whether s is a text keyword or unset.
func ValidText(s string) bool {
	switch s {
	case "", TextLeft, Center, TextRight:
		return true
	}
	return false
}
