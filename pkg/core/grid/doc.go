// Package grid implements the widget grid of the new-tab layout and the
// algorithms that mutate it.
//
// # Model
//
// A [Grid] is a rectangular slice of rows. Each cell holds a widget
// identifier or the [Empty] marker ("."). A widget may occupy several cells,
// but its cells always form one straight, contiguous run along a row or a
// column: that run is a span.
//
// Positions are reported in row-major order: row ascending, then column
// ascending. Every tie-break in this package (which cell survives a span
// collapse, where a widget spans from) uses the first position in that order.
//
// # Text Form
//
// Grids serialize to the CSS grid-template-areas form. Rows are wrapped in
// single quotes and separated by spaces, cells are separated by spaces:
//
//	'time time' 'main quicklinks'
//
// [Parse] never fails: ragged input is padded, anything else malformed becomes
// an empty grid. [ParseStrict] reports the problem instead.
//
// # Mutations
//
// [Move], [ToggleSpan], [Add] and [Remove] return new grids and never modify
// their input. Moves clamp out-of-range deltas per axis, grow the grid
// downward when a widget moves past the last row, and drop rows that end up
// empty ([Compact]).
//
// [Boundaries] and [Spans] describe which controls would be no-ops for a
// widget, so a toolbox can disable them.
package grid
