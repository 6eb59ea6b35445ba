// Package ui draws domterm's screen and runs its event loop.
//
// # Loop
//
// Loop owns the screen for the lifetime of a session. Each iteration it
// applies pending engine work, draws one frame and then waits on whichever
// fires first:
//
//	engine.Ready()   work recorded by a signal or future; re-render
//	input event      quit, resize or navigation
//	ctx.Done()       stop without error
//
// Input is read by tcell's ChannelEvents on its own goroutine. A closed input
// channel or a tcell.EventError ends the loop with a read IOError; a failed
// frame ends it with a draw IOError. The caller is expected to exit the
// terminal session on every path.
//
// # Keys
//
// Bindings use bubbles/key. Only quit ("q") is bound by default; up, down,
// top, bottom and clear act on the command list once configured. Every
// other key is logged at debug level and dropped.
//
// # Renderer
//
// Renderer builds tview widgets from scratch for every frame and draws them
// without a tview.Application:
//
//	row 0       status text (first line of the engine's flattened tree)
//	rows 1..n   ┌ Commands ┐┌ Output ──────────┐
//	            │> Console ││Compiling ...      │
//	            └──────────┘└──────────────────┘
//
// The command pane is as wide as its longest label plus chrome, bounded by
// the configured minimum and half the screen. The output pane shows the tail
// of the output lines with ANSI sequences removed. Output depends only on
// the frame, the list state and the screen size.
package ui
