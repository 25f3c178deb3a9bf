package css

import (
	"strings"
	"testing"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
)

func TestSheet(t *testing.T) {
	s := NewSheet()
	s.ApplyGrid("'time time' 'main quicklinks'")
	s.ApplyAlign(widget.Main, layout.Align{Box: layout.BoxStart, Text: layout.TextLeft})
	s.ApplyAlign(widget.Time, layout.Align{})

	css := s.String()
	for _, want := range []string{
		"--grid: 'time time' 'main quicklinks';",
		"grid-template-areas: var(--grid);",
		"#linkblocks {\n  grid-area: quicklinks;\n}",
		"#main {\n  grid-area: main;\n  place-self: start;\n  text-align: left;\n}",
		"#time {\n  grid-area: time;\n}",
		"#notes_container {\n  display: none;\n}",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q:\n%s", want, css)
		}
	}
}

func TestSheetClearsAlignment(t *testing.T) {
	s := NewSheet()
	s.ApplyGrid("'main'")
	s.ApplyAlign(widget.Main, layout.Align{Box: layout.BoxEnd})
	s.ApplyAlign(widget.Main, layout.Align{})

	if strings.Contains(s.String(), "place-self") {
		t.Errorf("empty alignment should remove the rule:\n%s", s.String())
	}
}

func TestFromLayout(t *testing.T) {
	l := layout.Layout{Grid: grid.Parse("'. time .'")}
	l.SetAlign(widget.Time, layout.Align{Text: layout.TextRight})

	s := FromLayout(l)
	if s.Areas() != "'. time .'" {
		t.Errorf("Areas() = %q", s.Areas())
	}
	if !strings.Contains(s.String(), "text-align: right;") {
		t.Errorf("alignment missing:\n%s", s.String())
	}
}
