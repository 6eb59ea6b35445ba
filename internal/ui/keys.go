package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/gdamore/tcell/v2"

	"github.com/five82/domterm/internal/config"
)

// keyMap defines the keyboard bindings of the loop.
type keyMap struct {
	Quit key.Binding

	// Navigation. Unbound unless configured.
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Clear  key.Binding
}

// newKeyMap builds bindings from configured key names. An empty list leaves
// the action disabled.
func newKeyMap(keys config.Keys) keyMap {
	return keyMap{
		Quit:   binding(keys.Quit, "quit"),
		Up:     binding(keys.Up, "up"),
		Down:   binding(keys.Down, "down"),
		Top:    binding(keys.Top, "first"),
		Bottom: binding(keys.Bottom, "last"),
		Clear:  binding(keys.Clear, "clear"),
	}
}

func binding(keys []string, help string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), help),
	)
}

// ShortHelp returns the enabled bindings, navigation first.
func (k keyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Clear, k.Quit} {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}

// helpLine renders bindings as "key desc" pairs for the status row.
func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

var namedKeys = map[tcell.Key]string{
	tcell.KeyUp:        "up",
	tcell.KeyDown:      "down",
	tcell.KeyLeft:      "left",
	tcell.KeyRight:     "right",
	tcell.KeyHome:      "home",
	tcell.KeyEnd:       "end",
	tcell.KeyPgUp:      "pgup",
	tcell.KeyPgDn:      "pgdown",
	tcell.KeyInsert:    "insert",
	tcell.KeyDelete:    "delete",
	tcell.KeyEnter:     "enter",
	tcell.KeyTab:       "tab",
	tcell.KeyBacktab:   "shift+tab",
	tcell.KeyEscape:    "esc",
	tcell.KeyBackspace: "backspace",
	tcell.KeyF1:        "f1",
	tcell.KeyF2:        "f2",
	tcell.KeyF3:        "f3",
	tcell.KeyF4:        "f4",
	tcell.KeyF5:        "f5",
	tcell.KeyF6:        "f6",
	tcell.KeyF7:        "f7",
	tcell.KeyF8:        "f8",
	tcell.KeyF9:        "f9",
	tcell.KeyF10:       "f10",
	tcell.KeyF11:       "f11",
	tcell.KeyF12:       "f12",
}

// keyName renders a tcell key event with the names used in key bindings,
// such as "q", "up", "ctrl+c" or "alt+x".
type keyName struct {
	ev *tcell.EventKey
}

func (k keyName) String() string {
	ev := k.ev
	var name string
	switch {
	case ev.Key() == tcell.KeyRune:
		name = string(ev.Rune())
		if ev.Rune() == ' ' {
			name = "space"
		}
	case namedKeys[ev.Key()] != "":
		name = namedKeys[ev.Key()]
	case ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ:
		return "ctrl+" + string(rune('a'+ev.Key()-tcell.KeyCtrlA))
	default:
		return strings.ToLower(ev.Name())
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		name = "alt+" + name
	}
	if ev.Key() != tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		name = "ctrl+" + name
	}
	return name
}

func matches(ev *tcell.EventKey, b ...key.Binding) bool {
	return key.Matches(keyName{ev}, b...)
}
