//go:build !windows

package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// observedTty records the first write failure so frame swaps, which tcell
// performs without returning errors, can still be reported.
type observedTty struct {
	tcell.Tty

	mu  sync.Mutex
	err error
}

func (t *observedTty) Write(p []byte) (int, error) {
	n, err := t.Tty.Write(p)
	if err != nil {
		t.mu.Lock()
		if t.err == nil {
			t.err = err
		}
		t.mu.Unlock()
	}
	return n, err
}

func (t *observedTty) failure() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

type ttyDevice struct {
	mu  sync.Mutex
	tty *observedTty
}

// TTY returns the device backed by the controlling terminal.
func TTY() Device {
	return &ttyDevice{}
}

func (d *ttyDevice) Open() (tcell.Screen, error) {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !term.IsTerminal(int(f.Fd())) {
			return nil, fmt.Errorf("%s: %w", f.Name(), ErrNotTerminal)
		}
	}
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	observed := &observedTty{Tty: tty}
	screen, err := tcell.NewTerminfoScreenFromTty(observed)
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	d.mu.Lock()
	d.tty = observed
	d.mu.Unlock()
	return screen, nil
}

func (d *ttyDevice) Err() error {
	d.mu.Lock()
	tty := d.tty
	d.mu.Unlock()
	if tty == nil {
		return nil
	}
	return tty.failure()
}
