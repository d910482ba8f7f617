package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/londonapp/internal/cli/formatter"
	"github.com/alexanderramin/londonapp/internal/clock"
	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/geo"
	"github.com/alexanderramin/londonapp/internal/mapview"
)

func bannerNow(app *App) clock.Banner {
	return clock.BannerFor(app.now())
}

// loadDay loads the trip and finds the day whose tag is arg.
func loadDay(ctx context.Context, app *App, arg string) (domain.Day, error) {
	tag, err := strconv.Atoi(arg)
	if err != nil {
		return domain.Day{}, fmt.Errorf("invalid day tag %q", arg)
	}
	trip, err := app.Loader.Load(ctx)
	if err != nil {
		return domain.Day{}, err
	}
	_, day, ok := trip.DayByTag(tag)
	if !ok {
		return domain.Day{}, fmt.Errorf("day %d is not in the itinerary", tag)
	}
	return day, nil
}

func newDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the days of the trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := app.Loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.DayList(trip.Days, app.Palette, -1))
			return nil
		},
	}
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day <tag>",
		Short: "Show the timeline and weather for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := loadDay(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			title := formatter.DayStyle(app.Palette.ForTag(day.Tag)).Bold(true).Render(formatter.SheetTitle(day))
			fmt.Fprintln(out, title)
			if t, ok := day.ParsedDate(); ok {
				fmt.Fprintln(out, formatter.Dim(formatter.ShortDate(t)))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Timeline(day, app.Providers))
			fmt.Fprintln(out)

			if tile := dayWeather(cmd, app, day); tile != "" {
				fmt.Fprintln(out, tile)
			}
			fmt.Fprintln(out, formatter.NowTile(app.now()))
			return nil
		},
	}
}

// dayWeather fetches the forecast for the day's first located point.
// Failures render the unavailable tile; they are not command errors.
func dayWeather(cmd *cobra.Command, app *App, day domain.Day) string {
	if app.Weather == nil {
		return ""
	}
	place, ok := domain.FirstLocated(day.Points)
	if !ok {
		return ""
	}

	if app.interactive() {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Wetter wird geladen")
		defer stop()
	}
	report, err := app.Weather.Current(cmd.Context(), *place.Coords)
	if err != nil {
		return formatter.WeatherFailed()
	}
	return formatter.WeatherTile(place.Name, report)
}

func newIdeasCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "List idea groups padded with suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && !domain.IdeaCategory(category).Known() {
				return fmt.Errorf("unknown category %q", category)
			}
			trip, err := app.Loader.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, g := range app.Catalog.ExpandAll(trip.Ideas) {
				if category != "" && string(g.Key) != category {
					continue
				}
				rows := make([][]string, 0, len(g.Ideas))
				for _, idea := range g.Ideas {
					mapMark := ""
					if app.Catalog.ResolveCoords(idea.Name, idea.Coords) != nil {
						mapMark = "📍"
					}
					rows = append(rows, []string{idea.Name, mapMark, app.Providers.General(idea.Name, idea.URL)})
				}
				fmt.Fprintln(out, formatter.Header(g.Icon+" "+g.Title))
				fmt.Fprintln(out, formatter.RenderTable([]string{"Idee", "Karte", "Link"}, rows, 80))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Show a single group ("+categoryList()+")")
	return cmd
}

func categoryList() string {
	keys := make([]string, 0, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		keys = append(keys, string(c))
	}
	return strings.Join(keys, ", ")
}

func newMapCmd(app *App) *cobra.Command {
	var cols, rows int

	cmd := &cobra.Command{
		Use:   "map <tag>",
		Short: "Draw the map of one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := loadDay(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			model := mapview.BuildDay(day, app.Palette, app.Providers).
				Refit(geo.DefaultWidth, geo.DefaultHeight, app.maxZoom())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, formatter.SheetTitle(day))
			fmt.Fprintln(out, mapview.Draw(model, model.Viewport, cols, rows, 0).String())
			if model.Viewport.Empty {
				fmt.Fprintln(out, formatter.Dim("Keine Orte mit Koordinaten für diesen Tag."))
			}
			for _, line := range model.Legend() {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, formatter.Dim("Kachel "+model.CenterTile().URL(app.config().Map.TileURL)))
			fmt.Fprintln(out, formatter.Dim(geo.Attribution))
			return nil
		},
	}

	cmd.Flags().IntVar(&cols, "cols", 60, "Canvas width in terminal cells")
	cmd.Flags().IntVar(&rows, "rows", 20, "Canvas height in terminal cells")
	return cmd
}
