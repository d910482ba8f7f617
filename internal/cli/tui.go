package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/londonapp/internal/cli/formatter"
)

// runTUI starts the full-screen itinerary viewer.
func runTUI(ctx context.Context, app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// printOverview is the non-interactive fallback of the root command: the
// day list followed by the idea groups.
func printOverview(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()
	trip, err := app.Loader.Load(cmd.Context())
	if err != nil {
		fmt.Fprintln(out, formatter.LoadError(err))
		return err
	}

	fmt.Fprintln(out, formatter.Banner(bannerNow(app)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.DayList(trip.Days, app.Palette, -1))
	fmt.Fprintln(out)
	for _, g := range app.Catalog.ExpandAll(trip.Ideas) {
		fmt.Fprintln(out, formatter.IdeaGroupHeader(g, true, false))
		for _, idea := range g.Ideas {
			mappable := app.Catalog.ResolveCoords(idea.Name, idea.Coords) != nil
			fmt.Fprintln(out, formatter.IdeaItem(idea, app.Providers.General(idea.Name, idea.URL), mappable, false))
		}
	}
	return nil
}
