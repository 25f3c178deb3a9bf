// Package editor implements the layout editing session of the new-tab page.
//
// A [Session] owns the authoritative in-memory copy of the settings
// document, the editing flag and the one selected widget. Every operation is
// a synchronous read-modify-write turn under the session mutex:
//
//  1. compute the new grid or alignment with the pure functions of
//     [grid] and [layout]
//  2. push the result to the display [Surface]
//  3. hand a [settings.Patch] to the background [settings.Writer]
//
// Storage never blocks an edit and storage failures never fail one; they are
// logged and reported through [observability.EditorHooks] and
// [observability.StoreHooks].
//
// # Selection
//
// Move, span and alignment operations act on the selected widget. Without a
// selection they fail with the NO_SELECTION code of [errors]; selecting
// requires an editing session (NOT_EDITING) and a widget present in the
// active grid (NOT_FOUND).
//
// # Example
//
//	s, err := editor.Open(ctx, store, editor.Options{Surface: sheet})
//	if err != nil {
//	    return err
//	}
//	defer s.Close(ctx)
//
//	s.StartEditing()
//	_ = s.Select(widget.Main)
//	_ = s.Move(0, -1)
package editor
