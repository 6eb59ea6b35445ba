package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/five82/domterm/internal/state"
)

const (
	commandsTitle    = " Commands "
	outputTitle      = " Output "
	selectedMarker   = "> "
	unselectedMarker = "  "

	// border columns plus the selection marker
	commandChrome = 2 + len(selectedMarker)

	defaultMinCommandWidth = 20
)

// Frame is the content of one screen.
type Frame struct {
	Status   string
	Help     string // key hints, right-aligned on the status row
	Commands []string
	Output   []string
}

// RenderOptions tune the layout.
type RenderOptions struct {
	MinCommandWidth int
}

// Renderer paints frames into a screen's backbuffer. It keeps no state
// between draws: every call builds fresh widgets.
type Renderer struct {
	theme Theme
	opts  RenderOptions
}

// NewRenderer returns a renderer using theme.
func NewRenderer(theme Theme, opts RenderOptions) *Renderer {
	if opts.MinCommandWidth <= 0 {
		opts.MinCommandWidth = defaultMinCommandWidth
	}
	return &Renderer{theme: theme, opts: opts}
}

// Draw clears the backbuffer and paints frame into it. The returned list
// state is sel clamped to the commands with its offset scrolled so the
// selected row is visible. Nothing is shown until the screen is swapped.
func (r *Renderer) Draw(screen tcell.Screen, frame Frame, sel state.ListState) state.ListState {
	width, height := screen.Size()
	screen.Clear()

	// status row plus the top and bottom pane borders
	rows := max(height-3, 0)
	sel = sel.Viewport(len(frame.Commands), rows)
	if width <= 0 || height <= 0 {
		return sel
	}

	paneWidth := r.commandWidth(frame.Commands, width)
	body := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(r.commandPane(frame.Commands, sel, rows, paneWidth-commandChrome), paneWidth, 0, false).
		AddItem(r.outputPane(frame.Output, rows), 0, 1, false)
	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.statusRow(frame.Status, frame.Help, width), 1, 0, false).
		AddItem(body, 0, 1, false)
	root.SetBackgroundColor(hexToColor(r.theme.Background))
	root.SetRect(0, 0, width, height)
	root.Draw(screen)
	return sel
}

// statusRow shows the first status line and, when both fit with a column to
// spare, the key hints at the right edge.
func (r *Renderer) statusRow(status, help string, width int) tview.Primitive {
	helpWidth := cellWidth.StringWidth(help)
	if help == "" || helpWidth+1 > width/2 {
		return r.statusText(status, width, tview.AlignLeft, r.theme.statusStyle())
	}
	row := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(r.statusText(status, width-helpWidth-1, tview.AlignLeft, r.theme.statusStyle()), 0, 1, false).
		AddItem(r.statusText(help, helpWidth, tview.AlignRight, r.theme.hintStyle()), helpWidth, 0, false)
	row.SetBackgroundColor(hexToColor(r.theme.Background))
	return row
}

func (r *Renderer) statusText(text string, width, align int, style tcell.Style) *tview.TextView {
	line, _, _ := strings.Cut(ansi.Strip(text), "\n")
	line = truncate(line, width)
	view := tview.NewTextView().
		SetWrap(false).
		SetDynamicColors(false).
		SetTextAlign(align).
		SetTextStyle(style).
		SetText(line)
	view.SetBackgroundColor(hexToColor(r.theme.Background))
	return view
}

func (r *Renderer) commandPane(commands []string, sel state.ListState, rows, labelWidth int) *tview.List {
	list := r.newPane(commandsTitle)
	idx, ok := sel.Selected()
	start := sel.Offset()
	end := min(start+rows, len(commands))
	for i := start; i < end; i++ {
		marker := unselectedMarker
		if ok && i == idx {
			marker = selectedMarker
		}
		list.AddItem(marker+tview.Escape(truncate(commands[i], labelWidth)), "", 0, nil)
	}
	if ok && idx >= start && idx < end {
		list.SetCurrentItem(idx - start)
		list.SetSelectedFocusOnly(false)
	}
	return list
}

func (r *Renderer) outputPane(lines []string, rows int) *tview.List {
	list := r.newPane(outputTitle)
	display := outputRows(lines)
	for _, line := range display[max(len(display)-rows, 0):] {
		list.AddItem(tview.Escape(line), "", 0, nil)
	}
	return list
}

func (r *Renderer) newPane(title string) *tview.List {
	list := tview.NewList().
		ShowSecondaryText(false).
		SetWrapAround(false).
		SetSelectedFocusOnly(true).
		SetMainTextStyle(r.theme.baseStyle()).
		SetSelectedStyle(r.theme.selectedStyle())
	list.SetBorder(true).
		SetBorderColor(hexToColor(r.theme.Border)).
		SetTitle(title).
		SetTitleColor(hexToColor(r.theme.Accent)).
		SetBackgroundColor(hexToColor(r.theme.Surface))
	return list
}

// commandWidth sizes the command pane to its longest label, bounded below by
// the configured minimum and above by half the screen.
func (r *Renderer) commandWidth(commands []string, width int) int {
	longest := 0
	for _, c := range commands {
		longest = max(longest, cellWidth.StringWidth(c))
	}
	lower := r.opts.MinCommandWidth
	upper := max(lower, width/2)
	return min(max(longest+commandChrome, lower), upper, width)
}
