package grid_test

import (
	"fmt"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
)

func ExampleMove() {
	g := grid.Parse("'time main' 'notes quotes'")

	moved, _ := grid.Move(g, "time", 1, 0)
	fmt.Println(moved)
	// Output:
	// 'main time' 'notes quotes'
}

func ExampleMove_grow() {
	// Moving below the last row appends a row first.
	g := grid.Parse("'time main'")

	moved, _ := grid.Move(g, "time", 0, 1)
	fmt.Println(moved)
	// Output:
	// '. main' 'time .'
}

func ExampleToggleSpan() {
	g := grid.Parse("'. time .' 'main notes quotes'")

	spanned, _ := grid.ToggleSpan(g, "time", grid.AxisRow)
	fmt.Println(spanned)
	fmt.Printf("%+v\n", grid.Spans(spanned, "time"))
	// Output:
	// 'time time time' 'main notes quotes'
	// {Col:false Row:true}
}

func ExampleBoundaries() {
	g := grid.Parse("'time main' 'notes .'")

	fmt.Printf("%+v\n", grid.Boundaries(g, "notes"))
	// Output:
	// {Top:false Bottom:true Left:true Right:false}
}

func ExampleRemove() {
	g := grid.Parse("'notes .' 'time main'")

	fmt.Println(grid.Remove(g, "notes"))
	// Output:
	// 'time main'
}
