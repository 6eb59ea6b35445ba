//go:build windows

package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

type consoleDevice struct{}

// TTY returns the device backed by the Windows console. Console writes do
// not surface errors, so Err always reports nil.
func TTY() Device {
	return consoleDevice{}
}

func (consoleDevice) Open() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, fmt.Errorf("%s: %w", os.Stdout.Name(), ErrNotTerminal)
	}
	return tcell.NewScreen()
}

func (consoleDevice) Err() error { return nil }
