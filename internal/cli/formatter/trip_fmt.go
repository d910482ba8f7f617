package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/itinerary"
	"github.com/alexanderramin/londonapp/internal/links"
)

// DayHeading returns "Tag <n> – <short date>". A date that doesn't parse is
// shown as given.
func DayHeading(day domain.Day) string {
	date := day.Date
	if t, ok := day.ParsedDate(); ok {
		date = ShortDate(t)
	}
	return fmt.Sprintf("Tag %d – %s", day.Tag, date)
}

// DayCard renders one day list entry: the heading in the day colour and a
// dot badge with the title.
func DayCard(day domain.Day, palette domain.Palette, selected bool) string {
	color := palette.ForTag(day.Tag)
	style := DayStyle(color)

	cursor := "  "
	title := StyleFg.Render(day.Title)
	if selected {
		cursor = StyleGreen.Render("▸ ")
		style = style.Bold(true)
		title = Bold(day.Title)
	}
	return cursor + style.Render(PadRight(DayHeading(day), 22)) + " " + Dot(color) + " " + title
}

// DayList renders every day as a card. cursor is the selected index, or -1.
func DayList(days []domain.Day, palette domain.Palette, cursor int) string {
	if len(days) == 0 {
		return "  " + Dim("Keine Tage im Reiseplan.")
	}
	lines := make([]string, len(days))
	for i, d := range days {
		lines[i] = DayCard(d, palette, i == cursor)
	}
	return strings.Join(lines, "\n")
}

// SheetTitle is the detail view heading.
func SheetTitle(day domain.Day) string {
	return fmt.Sprintf("Tag %d: %s", day.Tag, day.Title)
}

// Timeline renders one row per point: time label, name and link.
func Timeline(day domain.Day, providers links.Providers) string {
	if len(day.Points) == 0 {
		return "  " + Dim("Keine Programmpunkte.")
	}
	var b strings.Builder
	for i, p := range day.Points {
		if i > 0 {
			b.WriteString("\n")
		}
		marker := " "
		if p.Located() {
			marker = "📍"
		}
		b.WriteString(fmt.Sprintf("  %s  %s %s  %s",
			StyleYellow.Render(PadRight(p.Time, 5)),
			marker,
			StyleBold.Render(PadMin(p.Name, 28)),
			StyleBlue.Render(providers.General(p.Name, p.URL)),
		))
	}
	return b.String()
}

// LoadError renders the placeholder card shown when the itinerary can't be loaded.
func LoadError(err error) string {
	return RenderBox("", StyleRed.Render("⚠️ Reiseplan konnte nicht geladen werden")+"\n"+Dim(itinerary.Kind(err)))
}
