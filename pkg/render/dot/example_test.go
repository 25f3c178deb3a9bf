package dot_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/render/dot"
)

func ExampleToDOT() {
	l := layout.Rebuild(layout.Double, []widget.ID{widget.Time, widget.Main})

	src := dot.ToDOT(l, dot.Options{Title: "double"})

	fmt.Println(strings.HasPrefix(src, "digraph G {"))
	fmt.Println(strings.Count(src, "<TD "))
	// Output:
	// true
	// 2
}
