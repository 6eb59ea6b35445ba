package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme is the fixed palette used by the renderer.
type Theme struct {
	Name string

	Background    string
	Surface       string
	Text          string
	Muted         string
	Accent        string
	Border        string
	SelectionBg   string
	SelectionText string
}

// DefaultTheme returns the Nightfox palette.
func DefaultTheme() Theme {
	return Theme{
		Name:          "Nightfox",
		Background:    "#131a24",
		Surface:       "#192330",
		Text:          "#cdcecf",
		Muted:         "#738091",
		Accent:        "#719cd6",
		Border:        "#39506d",
		SelectionBg:   "#2b3b51",
		SelectionText: "#dfdfe0",
	}
}

func (t Theme) baseStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(hexToColor(t.Text)).
		Background(hexToColor(t.Surface))
}

func (t Theme) statusStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(hexToColor(t.Muted)).
		Background(hexToColor(t.Background))
}

func (t Theme) hintStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(hexToColor(t.Accent)).
		Background(hexToColor(t.Background))
}

func (t Theme) selectedStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(hexToColor(t.SelectionText)).
		Background(hexToColor(t.SelectionBg)).
		Bold(true)
}

func hexToColor(hex string) tcell.Color {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(hex)
}
