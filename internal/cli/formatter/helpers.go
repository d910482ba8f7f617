package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		titleRendered := StyleHeader.Render(title)
		inner := titleRendered + "\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

var germanWeekdays = [...]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."}

// ShortDate formats t the way a German calendar abbreviates it: "Mo., 01.06.".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%s, %02d.%02d.", germanWeekdays[t.Weekday()], t.Day(), int(t.Month()))
}

// PadRight pads s with spaces to a visible width, truncating with an
// ellipsis when it is longer.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// PadMin pads s with spaces to at least width visible columns and never cuts it.
func PadMin(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// Truncate shortens s to at most width runes, ending in "…" when cut.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:max(width, 0)])
	}
	return string(r[:width-1]) + "…"
}
