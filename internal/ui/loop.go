package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/five82/domterm/internal/config"
	"github.com/five82/domterm/internal/logging"
	"github.com/five82/domterm/internal/state"
	"github.com/five82/domterm/internal/terminal"
	"github.com/five82/domterm/vdom"
)

// LoopState is the lifecycle state of a Loop.
type LoopState int

const (
	Running LoopState = iota
	Stopped
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("LoopState(%d)", int(s))
	}
}

// Display is where frames are drawn. terminal.Session implements it.
type Display interface {
	Draw(paint func(tcell.Screen)) error
	Screen() tcell.Screen
}

// Engine is the UI tree driven by the loop. vdom.VirtualDom implements it.
type Engine interface {
	HasWork() bool
	MarkDirty(id vdom.ScopeID)
	Ready() <-chan struct{}
	WaitForWork(ctx context.Context) error
	RenderImmediate() *vdom.Element
	Text() string
}

// Options configure a Loop.
type Options struct {
	Commands        []string
	Output          func() []string // read on every frame; may be nil
	Keys            config.Keys
	Theme           Theme
	MinCommandWidth int
}

var errInputClosed = errors.New("input stream closed")

// Loop renders the engine's tree and reacts to terminal input until the
// quit key is pressed, the context ends, or drawing or reading fails.
type Loop struct {
	display  Display
	engine   Engine
	opts     Options
	keys     keyMap
	help     string
	renderer *Renderer

	mu    sync.Mutex
	state LoopState
	sel   state.ListState
}

// NewLoop returns a loop drawing into display. A zero Theme selects
// DefaultTheme.
func NewLoop(display Display, engine Engine, opts Options) *Loop {
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}
	if len(opts.Keys.Quit) == 0 {
		opts.Keys.Quit = config.Default().Keys.Quit
	}
	keys := newKeyMap(opts.Keys)
	return &Loop{
		display:  display,
		engine:   engine,
		opts:     opts,
		keys:     keys,
		help:     helpLine(keys.ShortHelp()),
		renderer: NewRenderer(opts.Theme, RenderOptions{MinCommandWidth: opts.MinCommandWidth}),
	}
}

// Run blocks until the loop stops. Quitting and context cancellation return
// nil; draw and read failures are returned as *terminal.IOError.
func (l *Loop) Run(ctx context.Context) error {
	screen := l.display.Screen()
	if screen == nil {
		return &terminal.IOError{Op: terminal.OpRead, Err: terminal.ErrInactive}
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	l.setState(Running)
	logging.L.Debug("loop started", "theme", l.opts.Theme.Name, "help", l.help)
	l.engine.MarkDirty(vdom.RootScope)

	for {
		if l.engine.HasWork() {
			l.engine.RenderImmediate()
		}
		if err := l.draw(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			logging.Debugf("loop cancelled: %v", context.Cause(ctx))
			l.setState(Stopped)
			return nil
		case <-l.engine.Ready():
		case ev, ok := <-events:
			if !ok {
				return &terminal.IOError{Op: terminal.OpRead, Err: errInputClosed}
			}
			if err := l.handle(screen, ev); err != nil {
				return err
			}
			if l.State() == Stopped {
				return nil
			}
		}
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() LoopState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Selection returns the command list state as of the last frame.
func (l *Loop) Selection() state.ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sel
}

func (l *Loop) setState(s LoopState) {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()
}

func (l *Loop) draw() error {
	frame := Frame{
		Status:   l.engine.Text(),
		Help:     l.help,
		Commands: l.opts.Commands,
	}
	if l.opts.Output != nil {
		frame.Output = l.opts.Output()
	}
	return l.display.Draw(func(screen tcell.Screen) {
		sel := l.renderer.Draw(screen, frame, l.Selection())
		l.mu.Lock()
		l.sel = sel
		l.mu.Unlock()
	})
}

func (l *Loop) handle(screen tcell.Screen, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if matches(ev, l.keys.Quit) {
			logging.L.Debug("quit key pressed", "key", keyName{ev}.String())
			l.setState(Stopped)
			return nil
		}
		l.navigate(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		logging.L.Debug("terminal resized", "width", w, "height", h)
		screen.Sync()
	case *tcell.EventError:
		return &terminal.IOError{Op: terminal.OpRead, Err: ev}
	default:
		logging.L.Debug("event ignored", "type", fmt.Sprintf("%T", ev))
	}
	return nil
}

// navigate applies configured navigation bindings to the command list.
// Keys without a binding are observed and dropped.
func (l *Loop) navigate(ev *tcell.EventKey) {
	n := len(l.opts.Commands)
	l.mu.Lock()
	defer l.mu.Unlock()

	var moved bool
	switch {
	case matches(ev, l.keys.Up):
		moved = l.sel.Prev(n)
	case matches(ev, l.keys.Down):
		moved = l.sel.Next(n)
	case matches(ev, l.keys.Top):
		moved = l.sel.First(n)
	case matches(ev, l.keys.Bottom):
		moved = l.sel.Last(n)
	case matches(ev, l.keys.Clear):
		_, moved = l.sel.Selected()
		l.sel.Clear()
	default:
		logging.L.Debug("key ignored", "key", keyName{ev}.String())
		return
	}
	if moved {
		idx, ok := l.sel.Selected()
		logging.L.Debug("selection changed", "index", idx, "selected", ok)
	}
}
