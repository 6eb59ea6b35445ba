package terminal

import (
	"errors"
	"fmt"
)

// Operations reported by IOError.
const (
	OpEnter = "enter"
	OpExit  = "exit"
	OpDraw  = "draw"
	OpRead  = "read"
)

var (
	// ErrInactive is returned when drawing into a session that has not been
	// entered or has already exited.
	ErrInactive = errors.New("session is not active")

	// ErrNotTerminal is returned by the TTY device when stdin or stdout is not
	// a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

// IOError is the single error kind for terminal mode switches, frame draws
// and input reads.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
