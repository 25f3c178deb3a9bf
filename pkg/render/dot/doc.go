// Package dot renders a layout grid as a Graphviz diagram.
//
// # Overview
//
// The grid becomes a single HTML-like table node: one cell per grid cell,
// with widgets spanning several cells drawn as one merged cell (colspan for
// row spans, rowspan for column spans). This gives a picture of the layout
// without a browser.
//
// # Usage
//
//	src := dot.ToDOT(l, dot.Options{Title: "double"})
//	svg, err := dot.RenderSVG(src)
//
// For PDF or PNG output:
//
//	pdf, err := dot.Rasterize(ctx, src, render.PDF, 0)
//	png, err := dot.Rasterize(ctx, src, render.PNG, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package dot
