package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the padding between table columns.
const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Cells wider than maxCell visible columns are truncated; maxCell <= 0
// disables truncation. Widths are measured without ANSI escapes.
func RenderTable(headers []string, rows [][]string, maxCell int) string {
	cols := len(headers)
	if cols == 0 {
		return ""
	}

	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		if maxCell > 0 && lipgloss.Width(row[i]) > maxCell {
			return Truncate(row[i], maxCell)
		}
		return row[i]
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := range cols {
			widths[i] = max(widths[i], lipgloss.Width(cell(row, i)))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(...string) string) {
		for i, c := range cells {
			b.WriteString(style(c))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(c), 0)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, StyleHeader.Render)

	seps := make([]string, cols)
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, StyleDim.Render)

	for _, row := range rows {
		cells := make([]string, cols)
		for i := range cols {
			cells[i] = cell(row, i)
		}
		writeRow(cells, func(s ...string) string { return strings.Join(s, "") })
	}

	return b.String()
}
