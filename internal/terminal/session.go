package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/five82/domterm/internal/logging"
)

// Session owns the screen between Enter and Exit.
type Session struct {
	dev Device

	mu     sync.Mutex
	screen tcell.Screen
	active bool
}

// NewSession returns an inactive session over dev.
func NewSession(dev Device) *Session {
	return &Session{dev: dev}
}

// Enter switches the terminal into raw mode and the alternate screen.
// Calling Enter on an active session is a no-op.
func (s *Session) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return nil
	}
	screen, err := s.dev.Open()
	if err != nil {
		return &IOError{Op: OpEnter, Err: err}
	}
	if err := screen.Init(); err != nil {
		return &IOError{Op: OpEnter, Err: err}
	}
	s.screen = screen
	s.active = true

	w, h := screen.Size()
	logging.L.Debug("terminal session entered", "width", w, "height", h)
	return nil
}

// Exit leaves the alternate screen and restores the original input mode.
// Calling Exit on an inactive session is a no-op.
func (s *Session) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}
	before := s.dev.Err()
	s.screen.Fini()
	s.active = false
	logging.L.Debug("terminal session exited")

	if err := s.dev.Err(); err != nil && before == nil {
		return &IOError{Op: OpExit, Err: err}
	}
	return nil
}

// Active reports whether the session is between Enter and Exit.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Screen returns the active screen, or nil when the session is inactive.
func (s *Session) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return nil
	}
	return s.screen
}

// Size returns the current screen dimensions in cells.
func (s *Session) Size() (width, height int) {
	screen := s.Screen()
	if screen == nil {
		return 0, 0
	}
	return screen.Size()
}

// Draw hands the backbuffer to paint and then swaps it onto the visible
// screen. Output failures reported by the device are returned as IOErrors.
func (s *Session) Draw(paint func(tcell.Screen)) error {
	screen := s.Screen()
	if screen == nil {
		return &IOError{Op: OpDraw, Err: ErrInactive}
	}
	paint(screen)
	screen.Show()
	if err := s.dev.Err(); err != nil {
		return &IOError{Op: OpDraw, Err: err}
	}
	return nil
}
