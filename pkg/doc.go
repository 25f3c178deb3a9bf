// Package pkg provides the libraries behind tabgrid, the widget layout
// editor of a new-tab page.
//
// # Overview
//
// Widgets (time, main, quicklinks, notes, quotes, searchbar) are placed on a
// CSS grid. Each display density (single, double, triple columns) keeps its
// own grid and per-widget alignment. The pkg directory is organized into:
//
//  1. [core/grid] - The grid engine: parsing, moving, spanning, adding and
//     removing widgets
//  2. [core/layout] - Densities, alignments and the per-density layouts
//  3. [core/editor] - Editing sessions: selection, edits, reset confirmation
//  4. [settings] - The settings document, its stores and the async writer
//  5. [render] - Stylesheet and diagram output
//  6. [api] - HTTP editing API
//
// # Architecture
//
// The typical flow of one edit:
//
//	CLI / TUI / HTTP request
//	         ↓
//	    [core/editor] session (validate, select, mutate)
//	         ↓
//	    [core/grid] engine (pure grid transformation)
//	         ↓
//	    surface (stylesheet)  +  [settings] writer (persist)
//
// # Quick Start
//
//	store, _ := settings.Open(ctx, settings.Options{Backend: "file", Profile: "default", Path: dir})
//	sheet := css.NewSheet()
//	s, _ := editor.Open(ctx, store, editor.Options{Surface: sheet})
//	defer s.Close(ctx)
//
//	s.StartEditing()
//	_ = s.Select(widget.Main)
//	_ = s.Move(0, -1)
//	fmt.Print(sheet)
//
// [core/grid]: github.com/matzehuels/tabgrid/pkg/core/grid
// [core/layout]: github.com/matzehuels/tabgrid/pkg/core/layout
// [core/editor]: github.com/matzehuels/tabgrid/pkg/core/editor
// [settings]: github.com/matzehuels/tabgrid/pkg/settings
// [render]: github.com/matzehuels/tabgrid/pkg/render
// [api]: github.com/matzehuels/tabgrid/pkg/api
package pkg
