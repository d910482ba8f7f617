package formatter

import (
	"fmt"

	"github.com/alexanderramin/londonapp/internal/catalog"
	"github.com/alexanderramin/londonapp/internal/domain"
)

// IdeaGroupHeader renders an accordion header with its open/closed toggle.
func IdeaGroupHeader(g catalog.ExpandedGroup, expanded, selected bool) string {
	toggle := "＋"
	if expanded {
		toggle = "－"
	}
	cursor := "  "
	title := StyleFg.Render(g.Icon + " " + g.Title)
	if selected {
		cursor = StyleGreen.Render("▸ ")
		title = Bold(g.Icon + " " + g.Title)
	}
	return fmt.Sprintf("%s%s %s %s", cursor, title, Dim(fmt.Sprintf("(%d)", len(g.Ideas))), StyleHeader.Render(toggle))
}

// IdeaItem renders one idea pill: name, link and a map marker when the idea
// can be shown on the map.
func IdeaItem(idea domain.Idea, link string, mappable, selected bool) string {
	cursor := "    "
	name := StyleFg.Render(PadRight(idea.Name, 28))
	if selected {
		cursor = "  " + StyleGreen.Render("▸ ")
		name = Bold(PadRight(idea.Name, 28))
	}
	mapMark := "  "
	if mappable {
		mapMark = "📍"
	}
	return fmt.Sprintf("%s%s %s 🔗 %s", cursor, name, mapMark, StyleBlue.Render(link))
}
