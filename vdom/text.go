package vdom

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Flatten lays an element tree out as plain text. Children of an element with
// the "flex-row" class are joined side by side, separated by the "gap"
// attribute (one column by default); all other children are stacked.
func Flatten(e *Element) string {
	if e == nil {
		return ""
	}
	if e.Tag == TagText {
		return e.Content
	}
	if e.HasClass("hidden") {
		return ""
	}

	parts := make([]string, 0, len(e.Children))
	for _, c := range e.Children {
		if s := Flatten(c); s != "" {
			parts = append(parts, s)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	if !e.HasClass("flex-row") {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	gap := 1
	if v, ok := e.Attrs["gap"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			gap = n
		}
	}
	if gap == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	spacer := strings.Repeat(" ", gap)
	spaced := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}
