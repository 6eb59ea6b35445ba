package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHexToColor_EmptyDefaults(t *testing.T) {
	if got := hexToColor(" "); got != tcell.ColorDefault {
		t.Fatalf("hexToColor empty = %v, want %v", got, tcell.ColorDefault)
	}
}

func TestHexToColor_ParsesHex(t *testing.T) {
	if got, want := hexToColor("#719cd6"), tcell.NewHexColor(0x719cd6); got != want {
		t.Fatalf("hexToColor = %v, want %v", got, want)
	}
}

func TestDefaultThemeStyles(t *testing.T) {
	th := DefaultTheme()
	fg, bg, attrs := th.selectedStyle().Decompose()
	if fg != hexToColor(th.SelectionText) || bg != hexToColor(th.SelectionBg) {
		t.Fatalf("selected style colors = %v/%v", fg, bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Fatalf("selected style should be bold")
	}
}
