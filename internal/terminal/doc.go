// Package terminal manages the lifetime of the terminal a domterm program
// draws into.
//
// A Session switches the terminal into raw input mode and the alternate
// screen on Enter and reverses both on Exit. Exit must run on every exit path,
// including after errors, so callers defer it immediately after a successful
// Enter. Both calls are idempotent.
//
// The screen itself comes from a Device. TTY returns the device backed by the
// controlling terminal; Simulated returns an in-memory device built on
// tcell's simulation screen for tests and headless runs.
//
// Every failure surfaced by this package is an *IOError carrying the
// operation that failed (enter, exit, draw or read).
package terminal
