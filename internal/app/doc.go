// Package app is the composition root of domterm.
//
// # Overview
//
// Run takes a root component and optional overrides, and owns everything
// between reading the config file and restoring the terminal. The root
// package's Launch functions and the domterm command are thin wrappers
// around it.
//
// # Startup Sequence
//
// Run wires the pieces together:
//
//  1. Load configuration (config.Load) and apply the log overrides
//  2. Point the logger at the log file; stdout belongs to the screen
//  3. Build the virtual DOM from the root component (StatusBar by default)
//  4. Start the follower when a file to follow is configured
//  5. Enter the terminal session and run the ui loop
//  6. Exit the session, stop the follower, close the DOM
//
// Step 6 runs through defers, so it happens on every path: quit, context
// cancellation, or a draw or read failure.
//
// # Data Flow
//
//	┌──────────────┐  Update   ┌─────────────┐  Snapshot  ┌──────────┐
//	│  follower    │──────────→│ state.Store │───────────→│ ui.Loop  │
//	└──────┬───────┘           └─────────────┘            └────▲─────┘
//	       │ MarkDirty(RootScope)                              │ Ready
//	       └──────────────────→ vdom.VirtualDom ───────────────┘
//
// The loop reads the store through outputLines on every frame. The
// follower only marks the root dirty so the loop wakes up and draws; the
// element tree itself does not depend on the store.
//
// # Follower
//
// StartFollower re-reads the tail of the configured file every interval:
//
//	success            → store.Update(lines, nil); notify if lines changed
//	failure            → store.Update(nil, err); log a warning
//	next wait          → calculateBackoff(failures, interval)
//
// Backoff doubles the interval for each consecutive failure and is capped
// at 30s (or the interval itself, if that is longer):
//
//	interval 1s: 1s → 2s → 4s → 8s → 16s → 30s → 30s ...
//
// After two failures in a row the output pane gains a final line
//
//	! follow failed 2 times: open /path: permission denied
//
// below the last lines that were read successfully. The returned channel
// closes once the goroutine has exited; Run waits on it before returning.
//
// # Status Bar
//
// StatusBar is the root used when the caller passes none. It lays the
// configured status segments out in a row two columns apart and appends the
// session uptime, refreshed once a second by a future:
//
//	dx run -i  rust 1.70 | stable | dx 0.5.2  up 42s
//
// # Error Handling
//
// Config and logging failures are returned before the terminal is touched,
// wrapped as "load config: ..." or "configure logging: ...". Once the
// session is entered, the loop error and the session exit error are joined,
// so a draw failure followed by a failed restore reports both. Context
// cancellation is not an error.
//
// # Testing
//
// Options.Device replaces the process TTY. Tests pass a terminal.Simulated
// device and drive the run with simulated key presses and resizes.
package app
