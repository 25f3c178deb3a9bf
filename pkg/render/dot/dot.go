package dot

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tabgrid/pkg/core/grid"
	"github.com/matzehuels/tabgrid/pkg/core/layout"
	"github.com/matzehuels/tabgrid/pkg/core/widget"
	"github.com/matzehuels/tabgrid/pkg/render"
)

// Options configures diagram generation.
type Options struct {
	// Title is drawn above the grid when set.
	Title string
	// Detailed adds each widget's element handle and alignment to its cell.
	Detailed bool
}

// fills colors each widget's cells.
var fills = map[widget.ID]string{
	widget.Time:       "#fde68a",
	widget.Main:       "#bfdbfe",
	widget.Quicklinks: "#bbf7d0",
	widget.Notes:      "#fecaca",
	widget.Quotes:     "#ddd6fe",
	widget.Searchbar:  "#fed7aa",
}

// ToDOT converts a layout to Graphviz DOT source.
// The result can be rendered using [RenderSVG] or [Rasterize].
func ToDOT(l layout.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=18];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  grid [label=<%s>];\n", table(l, opts.Detailed))
	buf.WriteString("}\n")
	return buf.String()
}

// table renders the grid as an HTML-like table. Each widget's contiguous run
// starting at its first cell becomes one merged cell.
func table(l layout.Layout, detailed bool) string {
	g := l.Grid
	var b bytes.Buffer
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="4" CELLPADDING="12">`)
	if g.Height() == 0 {
		b.WriteString(`<TR><TD>empty</TD></TR></TABLE>`)
		return b.String()
	}

	covered := map[grid.Position]bool{}
	for r, row := range g {
		b.WriteString("<TR>")
		for c, cell := range row {
			p := grid.Position{Row: r, Col: c}
			if covered[p] {
				continue
			}
			if cell == grid.Empty {
				b.WriteString(`<TD WIDTH="120" HEIGHT="60"> </TD>`)
				continue
			}

			rowspan, colspan := run(g, p)
			for dr := 0; dr < rowspan; dr++ {
				for dc := 0; dc < colspan; dc++ {
					covered[grid.Position{Row: r + dr, Col: c + dc}] = true
				}
			}
			fmt.Fprintf(&b, `<TD ROWSPAN="%d" COLSPAN="%d" BGCOLOR="%s" WIDTH="120" HEIGHT="60">%s</TD>`,
				rowspan, colspan, fill(cell), cellLabel(l, cell, detailed))
		}
		b.WriteString("</TR>")
	}
	b.WriteString("</TABLE>")
	return b.String()
}

// run measures how far the widget at p extends right and down from p.
// Widgets span one axis at most, so at most one of the results exceeds 1.
func run(g grid.Grid, p grid.Position) (rowspan, colspan int) {
	id := g[p.Row][p.Col]
	colspan = 1
	for c := p.Col + 1; c < g.Width() && g[p.Row][c] == id; c++ {
		colspan++
	}
	rowspan = 1
	if colspan == 1 {
		for r := p.Row + 1; r < g.Height() && g[r][p.Col] == id; r++ {
			rowspan++
		}
	}
	return rowspan, colspan
}

func cellLabel(l layout.Layout, cell string, detailed bool) string {
	label := "<B>" + html.EscapeString(cell) + "</B>"
	id := widget.ID(cell)
	if !detailed || !id.Valid() {
		return label
	}
	a := l.Align(id).Resolved()
	return fmt.Sprintf(`%s<BR/><FONT POINT-SIZE="11">#%s</FONT><BR/><FONT POINT-SIZE="11">box %s, text %s</FONT>`,
		label, html.EscapeString(widget.Handle(id)), a.Box, a.Text)
}

func fill(cell string) string {
	if c, ok := fills[widget.ID(cell)]; ok {
		return c
	}
	return "#e5e7eb"
}

// RenderSVG renders DOT source to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [Rasterize].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing starts at the
// origin and scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// Rasterize renders DOT source to SVG and converts it with
// [render.Rasterize]. A scale of 2.0 produces a 2x resolution PNG.
func Rasterize(ctx context.Context, dot string, format render.Raster, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.Rasterize(ctx, svg, format, scale)
}
