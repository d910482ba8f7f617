package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/londonapp/internal/catalog"
	"github.com/alexanderramin/londonapp/internal/config"
	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/geo"
	"github.com/alexanderramin/londonapp/internal/itinerary"
	"github.com/alexanderramin/londonapp/internal/links"
	"github.com/alexanderramin/londonapp/internal/weather"
)

// TripLoader fetches the itinerary document.
type TripLoader interface {
	Load(ctx context.Context) (*domain.Trip, error)
	LoadRaw(ctx context.Context) ([]byte, *domain.Trip, error)
}

// App holds the services and settings used by CLI commands and the TUI.
type App struct {
	Loader    TripLoader
	Weather   weather.Client // nil disables the weather tile
	Catalog   catalog.Catalog
	Palette   domain.Palette
	Providers links.Providers
	Config    *config.Config
	Logger    *slog.Logger

	// Now is the wall clock; tests pin it.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewApp wires the production services from cfg.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	app := &App{
		Loader: itinerary.NewLoader(cfg.DataSource, itinerary.Options{
			Timeout: cfg.LoadTimeout(),
			Logger:  logger,
		}),
		Catalog:       catalog.Default(),
		Palette:       domain.DefaultPalette,
		Providers:     cfg.Providers(),
		Config:        cfg,
		Logger:        logger,
		Now:           time.Now,
		IsInteractive: stdinIsTerminal,
	}
	if cfg.Weather.Enabled {
		app.Weather = weather.NewOpenMeteoClient(weather.Config{
			Endpoint: cfg.Weather.Endpoint,
			Timeout:  time.Duration(cfg.Weather.TimeoutMs) * time.Millisecond,
			Timezone: cfg.Timezone,
		}, weather.NewLogObserver(logger))
	}
	return app
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		return config.DefaultConfig()
	}
	return a.Config
}

func (a *App) maxZoom() int {
	if z := a.config().Map.MaxZoom; z > 0 {
		return z
	}
	return geo.DefaultMaxZoom
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
