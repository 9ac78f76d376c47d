package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TrimToWidth truncates on display width, so wide glyphs never straddle a
// boundary. Zero or negative width yields the empty string.
func TrimToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// PadRight truncates then pads with spaces to exactly width display columns.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Width measures display width, ANSI sequences excluded.
func Width(s string) int { return ansi.StringWidth(s) }

// FitHeight truncates or pads a block to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// ClipHeight truncates a block to at most height lines without padding.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// Rule draws a horizontal rule clipped to width.
func Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}
