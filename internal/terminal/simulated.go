package terminal

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

const postRetry = time.Millisecond

// Cell is one captured screen cell.
type Cell struct {
	Main      rune
	Combining []rune
	Style     tcell.Style
	Width     int
}

// Simulated is an in-memory Device. It tracks whether the simulated terminal
// is in raw mode so callers can verify that a session restored it, and it can
// be told to fail opens or writes.
type Simulated struct {
	mu      sync.Mutex
	width   int
	height  int
	screen  *simScreen
	raw     bool
	opens   int
	openErr error
	err     error
}

// NewSimulated returns a simulated terminal of the given size.
func NewSimulated(width, height int) *Simulated {
	return &Simulated{width: width, height: height}
}

type simScreen struct {
	tcell.SimulationScreen
	dev *Simulated
}

func (s *simScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.dev.mu.Lock()
	w, h := s.dev.width, s.dev.height
	s.dev.raw = true
	s.dev.mu.Unlock()
	s.SetSize(w, h)
	return nil
}

func (s *simScreen) Fini() {
	s.SimulationScreen.Fini()
	s.dev.mu.Lock()
	s.dev.raw = false
	s.dev.mu.Unlock()
}

func (d *Simulated) Open() (tcell.Screen, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.openErr != nil {
		return nil, d.openErr
	}
	d.opens++
	d.err = nil
	d.screen = &simScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8"), dev: d}
	return d.screen, nil
}

func (d *Simulated) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Fail makes every following draw report err until the next Open.
func (d *Simulated) Fail(err error) {
	d.mu.Lock()
	d.err = err
	d.mu.Unlock()
}

// FailOpen makes Open return err, as a device that is not a terminal would.
func (d *Simulated) FailOpen(err error) {
	d.mu.Lock()
	d.openErr = err
	d.mu.Unlock()
}

// Raw reports whether the simulated terminal is in raw/alternate-screen mode.
func (d *Simulated) Raw() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Opens returns how many screens have been opened.
func (d *Simulated) Opens() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens
}

// Screen returns the most recently opened simulation screen.
func (d *Simulated) Screen() tcell.SimulationScreen {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.screen == nil {
		return nil
	}
	return d.screen
}

// Resize changes the simulated terminal size and posts a resize event.
func (d *Simulated) Resize(width, height int) error {
	d.mu.Lock()
	d.width, d.height = width, height
	screen := d.screen
	d.mu.Unlock()
	if screen == nil {
		return nil
	}
	screen.SetSize(width, height)
	return d.post(tcell.NewEventResize(width, height))
}

// PressRune posts a key press for r. While the screen is initialised,
// posting waits for room in the event queue instead of dropping the event.
func (d *Simulated) PressRune(r rune) error {
	return d.post(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

// PressKey posts a key press for a special key.
func (d *Simulated) PressKey(k tcell.Key) error {
	return d.post(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (d *Simulated) post(ev tcell.Event) error {
	screen := d.Screen()
	if screen == nil {
		return ErrInactive
	}
	for {
		err := screen.PostEvent(ev)
		if !errors.Is(err, tcell.ErrEventQFull) || !d.Raw() {
			return err
		}
		time.Sleep(postRetry)
	}
}

// Cells captures every cell of the screen's current content, row by row.
func (d *Simulated) Cells() [][]Cell {
	screen := d.Screen()
	if screen == nil {
		return nil
	}
	w, h := screen.Size()
	rows := make([][]Cell, h)
	for y := 0; y < h; y++ {
		row := make([]Cell, w)
		for x := 0; x < w; x++ {
			mainc, combc, style, width := screen.GetContent(x, y)
			row[x] = Cell{Main: mainc, Combining: combc, Style: style, Width: width}
		}
		rows[y] = row
	}
	return rows
}

// Lines returns the screen content as text, one string per row with trailing
// blanks removed.
func (d *Simulated) Lines() []string {
	cells := d.Cells()
	lines := make([]string, len(cells))
	for y, row := range cells {
		var b strings.Builder
		for _, c := range row {
			if c.Width == 0 && c.Main == 0 {
				continue
			}
			if c.Main == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Main)
			for _, r := range c.Combining {
				b.WriteRune(r)
			}
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}
