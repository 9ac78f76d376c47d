package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

// RenderPopup draws a bordered card centered over the base canvas. The card
// rectangle is computed in display columns, never bytes, so wide glyphs in
// the card or the base cannot shift the splice points. Both layers clip to
// width x height, so a resize between layout and draw only truncates.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	cardLines := strings.Split(popupCardStyle.Render(popup), "\n")
	if len(cardLines) > height {
		cardLines = cardLines[:height]
	}
	cardWidth := 0
	for _, line := range cardLines {
		if w := ansi.StringWidth(line); w > cardWidth {
			cardWidth = w
		}
	}
	if cardWidth > width {
		cardWidth = width
	}

	left := (width - cardWidth) / 2
	top := (height - len(cardLines)) / 2

	baseLines := strings.Split(base, "\n")
	out := make([]string, height)
	for row := 0; row < height; row++ {
		baseLine := ""
		if row < len(baseLines) {
			baseLine = baseLines[row]
		}
		baseLine = PadRight(baseLine, width)

		cardRow := row - top
		if cardRow < 0 || cardRow >= len(cardLines) {
			out[row] = baseLine
			continue
		}
		segment := PadRight(cardLines[cardRow], cardWidth)
		prefix := ansi.Truncate(baseLine, left, "")
		suffix := ansi.TruncateLeft(baseLine, left+cardWidth, "")
		out[row] = PadRight(prefix+segment+suffix, width)
	}
	return strings.Join(out, "\n")
}
