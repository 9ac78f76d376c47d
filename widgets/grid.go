package widgets

import "strings"

// ColumnGrid lays items out column-major inside a width x maxRows box, the
// way completion candidates read best. The selected item is rendered through
// highlight; items that would not fit are dropped, never drawn out of
// bounds.
func ColumnGrid(items []string, width, maxRows, colWidth, selected int, highlight func(string) string) string {
	if len(items) == 0 || width <= 0 || maxRows <= 0 || colWidth <= 0 {
		return ""
	}
	rows := maxRows
	if len(items) < rows {
		rows = len(items)
	}
	cols := (len(items) + rows - 1) / rows
	maxCols := width / colWidth
	if maxCols < 1 {
		maxCols = 1
	}
	if cols > maxCols {
		cols = maxCols
	}

	lines := make([]string, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			idx := c*rows + r
			if idx >= len(items) {
				break
			}
			cell := "  " + TrimToWidth(items[idx], colWidth-4)
			if idx == selected {
				cell = "> " + TrimToWidth(items[idx], colWidth-4)
				if highlight != nil {
					cell = highlight(cell)
				}
			}
			lines[r] += PadRight(cell, colWidth)
		}
	}
	for i := range lines {
		lines[i] = TrimToWidth(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
