// Package state holds the mutable data shared by the ui loop and its
// background producers.
//
// # Overview
//
// Two kinds of state live here. ListState is the selection and scroll
// position of the command list; it belongs to the loop goroutine alone.
// Store is the followed output; the follower goroutine writes it and the
// loop reads it on every frame.
//
// # Architecture
//
// Store follows a producer-consumer pattern:
//
//	Producer (follower):           Consumer (ui loop):
//	┌──────────────────┐          ┌──────────────────┐
//	│ logtail.Tail()   │          │                  │
//	│      ↓           │          │                  │
//	│ store.Update()   │─────────→│ store.Snapshot() │
//	│      ↓           │ (mutex)  │      ↓           │
//	│ wait interval    │          │ draw frame       │
//	└──────────────────┘          └──────────────────┘
//
// The two goroutines never share slices: Update stores a clone of the lines
// it was given and Snapshot hands out another clone.
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest followed lines
//   - Uses sync.RWMutex; one writer, one reader per frame
//   - Ready to use as a zero value
//
// Snapshot:
//   - Lines, LastUpdated, LastError and ConsecutiveFailures at one instant
//   - Returned by value with its own copy of Lines
//   - IsStale reports two or more failures in a row
//
// ListState:
//   - Optional selected index plus the first visible row
//   - Plain value type, not synchronised
//
// # Update Semantics
//
// Update records either new lines or a failure:
//
//	// Success: replace the lines, reset the failure count
//	store.Update(lines, nil)
//	→ snapshot.Lines = clone(lines)
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//	→ snapshot.LastUpdated = now
//
//	// Failure: keep the lines, count the error
//	store.Update(nil, err)
//	→ snapshot.Lines = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//	→ snapshot.LastUpdated = now
//
// The return value reports whether the lines changed, which is what the
// follower uses to decide whether to wake the loop. A failed read never
// blanks the output pane.
//
// # Selection Invariant
//
// When a ListState has a selection, the index is inside [0, n) for the list
// length n it was last clamped to. Every mutating method takes n and
// re-establishes the invariant:
//
//	Clamp(n)        drop or pull back an out-of-range selection
//	Next(n)/Prev(n) move one row, no wrap; from nothing, select an end
//	First(n)/Last(n) jump to either end
//	Clear()         drop the selection
//
// The movement methods report whether the selection actually changed. An
// empty list always clears the selection.
//
// # Viewport
//
// Viewport(n, rows) is pure: it returns a copy clamped to n whose offset
// keeps the selected row inside a window of rows lines, scrolling as little
// as possible. The renderer calls it on every draw, so the offset always
// follows the current terminal height:
//
//	n = 30, rows = 7, selected 25
//	→ offset 19, rows 19..25 visible, selection on the last visible row
//
// With nothing selected the offset is only clamped so the window does not
// run past the end of the list.
//
// # Usage
//
//	var store state.Store
//	store.Update([]string{"Compiling"}, nil)
//	snap := store.Snapshot()
//	if snap.IsStale() {
//	    // show snap.LastError next to the old lines
//	}
//
//	var sel state.ListState
//	sel.Next(len(commands))
//	sel = sel.Viewport(len(commands), visibleRows)
package state
