// Package layout stores widget layouts per density.
//
// A [Layout] pairs a [grid.Grid] with an alignment map. A [Move] holds one
// layout for each [Density] (single, double and triple columns) and the
// density currently shown. Each density owns its grid: switching the
// selection never touches the others.
//
// Reading never fails. [Move.Layout] returns a deep copy of the active layout,
// or an empty one when the density has never been stored, so callers can
// mutate the result freely and write it back with [Move.SetLayout].
//
// The JSON and BSON shapes match the persisted settings document:
//
//	{
//	  "selection": "double",
//	  "layouts": {
//	    "double": {
//	      "grid": [["time", "time"], ["main", "quicklinks"]],
//	      "items": {"main": {"box": "start", "text": "left"}}
//	    }
//	  }
//	}
package layout
