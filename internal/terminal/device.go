package terminal

import "github.com/gdamore/tcell/v2"

// Device opens the screen a Session draws into.
type Device interface {
	// Open returns a new, uninitialised screen.
	Open() (tcell.Screen, error)
	// Err reports the first output failure seen since the last Open.
	Err() error
}
