// Package render turns layouts into outputs a browser or a person can look at.
//
// # Overview
//
//   - Stylesheets (in [css] subpackage): the grid-template-areas declaration
//     plus per-widget placement rules. A [css.Sheet] is also an editor surface,
//     so it can follow a live editing session.
//   - Diagrams (in [dot] subpackage): Graphviz pictures of the grid.
//   - Generic format conversion (SVG to PDF/PNG).
//
// # Format Conversion
//
// [Rasterize] converts any SVG to PDF or PNG using the external
// rsvg-convert tool (from librsvg). Without it the call fails with an
// UNSUPPORTED error, which callers use to skip those formats.
//
//	svg, err := dot.RenderSVG(dot.ToDOT(l, dot.Options{}))
//	pdf, err := render.Rasterize(ctx, svg, render.PDF, 0)
//	png, err := render.Rasterize(ctx, svg, render.PNG, 2.0)  // 2x scale
//
// [css]: github.com/matzehuels/tabgrid/pkg/render/css
// [css.Sheet]: github.com/matzehuels/tabgrid/pkg/render/css#Sheet
// [dot]: github.com/matzehuels/tabgrid/pkg/render/dot
package render
