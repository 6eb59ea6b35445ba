package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	ellipsis = "…"
	tabWidth = 8
)

// cellWidth measures text independently of the locale so layout does not
// change with LANG.
var cellWidth = &runewidth.Condition{StrictEmojiNeutral: true}

// truncate shortens value to at most width cells, ending in an ellipsis when
// anything was cut.
func truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if cellWidth.StringWidth(value) <= width {
		return value
	}
	if width == 1 {
		return cellWidth.Truncate(value, width, "")
	}
	return cellWidth.Truncate(value, width, ellipsis)
}

// outputRows turns output lines into display rows: escape sequences are
// stripped, embedded newlines start a new row and tabs are expanded to the
// next tab stop.
func outputRows(lines []string) []string {
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		for _, part := range strings.Split(ansi.Strip(line), "\n") {
			rows = append(rows, expandTabs(strings.TrimSuffix(part, "\r")))
		}
	}
	return rows
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col += cellWidth.RuneWidth(r)
	}
	return b.String()
}
