package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/londonapp/internal/config"
	"github.com/alexanderramin/londonapp/internal/itinerary"
	"github.com/alexanderramin/londonapp/internal/testutil"
	"github.com/alexanderramin/londonapp/internal/weather"
)

// executeCmd runs a cobra command against app and captures stdout/stderr.
// A config path that does not exist keeps the run on defaults.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(func(cfg *config.Config, logger *slog.Logger) (*App, error) {
		app.Config = cfg
		return app, nil
	})
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml")}, args...))
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func TestRootCmd_NonInteractivePrintsOverview(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Tag 1 – So., 01.06.")
	assert.Contains(t, out, "Kulinarische Abende")
	assert.Contains(t, out, "Dishoom Covent Garden")
}

func TestRootCmd_InvalidConfigFails(t *testing.T) {
	t.Setenv("LONDONAPP_LOG__LEVEL", "loud")

	_, err := executeCmd(t, testApp(t), "days")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLogFallback_FollowsAppInteractivity(t *testing.T) {
	stderr := new(bytes.Buffer)
	root := &cobra.Command{Use: "londonapp"}
	root.SetErr(stderr)
	days := &cobra.Command{Use: "days"}
	root.AddCommand(days)

	tty := &App{IsInteractive: func() bool { return true }}
	pipe := &App{IsInteractive: func() bool { return false }}

	assert.Equal(t, io.Discard, logFallback(root, tty), "the TUI keeps logs off the terminal")
	assert.Equal(t, stderr, logFallback(root, pipe))
	assert.Equal(t, stderr, logFallback(days, tty), "subcommands log to stderr even on a terminal")
}

func TestRootCmd_SubcommandLogsReachStderr(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	buf := new(bytes.Buffer)
	root := NewRootCmd(func(cfg *config.Config, logger *slog.Logger) (*App, error) {
		app.Config = cfg
		app.Logger = logger
		return app, nil
	})
	root.SetOut(new(bytes.Buffer))
	root.SetErr(buf)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "days"})

	require.NoError(t, root.Execute())
	app.logger().Info("trip_listed")
	assert.Contains(t, buf.String(), "trip_listed")
}

func TestRootCmd_SetupErrorIsReturned(t *testing.T) {
	root := NewRootCmd(func(*config.Config, *slog.Logger) (*App, error) {
		return nil, fmt.Errorf("wiring failed")
	})
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "days"})

	assert.EqualError(t, root.Execute(), "wiring failed")
}

func TestDaysCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "days")
	require.NoError(t, err)

	assert.Contains(t, out, "Tag 1 – So., 01.06.")
	assert.Contains(t, out, "Tag 2 – Mo., 02.06.")
	assert.Contains(t, out, "Free Day")
}

func TestDaysCmd_LoadErrorIsReturned(t *testing.T) {
	app := testApp(t)
	app.Loader = testutil.StaticLoader{Err: fmt.Errorf("%w: bad json", itinerary.ErrDocumentParse)}

	_, err := executeCmd(t, app, "days")
	require.Error(t, err)
	assert.ErrorIs(t, err, itinerary.ErrDocumentParse)
}

func TestDayCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "day", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Tag 1: Arrival")
	assert.Contains(t, out, "Heathrow Express")
	assert.Contains(t, out, "21 °C / 23 °C morgen")
	assert.Contains(t, out, "🕒 14:05")
}

func TestDayCmd_WeatherFailureIsNotACommandError(t *testing.T) {
	app := testApp(t)
	app.Weather = &testutil.FakeWeather{Err: weather.ErrTimeout}

	out, err := executeCmd(t, app, "day", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Wetterdaten nicht verfügbar")
}

func TestDayCmd_WeatherDisabled(t *testing.T) {
	app := testApp(t)
	app.Weather = nil

	out, err := executeCmd(t, app, "day", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "°C")
}

func TestDayCmd_BadTag(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "day", "x")
	assert.Error(t, err)

	_, err = executeCmd(t, testApp(t), "day", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day 9")
}

func TestIdeasCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "ideas", "--category", "abends")
	require.NoError(t, err)

	assert.Contains(t, out, "ABENDSPAZIERGÄNGE", "group titles print as section headers")
	assert.Contains(t, out, "Rooftop Bar")
	assert.Contains(t, out, "https://example.com/bar")
	assert.NotContains(t, out, "Fotospots")
}

func TestIdeasCmd_UnknownCategory(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "ideas", "--category", "shopping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestMapCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "map", "1", "--cols", "40", "--rows", "12")
	require.NoError(t, err)

	assert.Contains(t, out, "1. Tate Modern (14:00)")
	assert.Contains(t, out, "2. Millennium Bridge (16:00)")
	assert.Contains(t, out, "© OpenStreetMap contributors")
}

func TestMapCmd_EmptyDay(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "map", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Keine Orte mit Koordinaten")
	assert.Contains(t, out, "/12/", "empty maps show central London at zoom 12")
}

func TestConfigShowCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "data_source: london2025_data.json")
	assert.Contains(t, out, "max_zoom: 18")
}

func TestConfigInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "londonapp.yml")

	out, err := executeCmd(t, testApp(t), "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = executeCmd(t, testApp(t), "config", "init", path)
	assert.Error(t, err, "existing files are kept without --force")

	_, err = executeCmd(t, testApp(t), "config", "init", "--force", path)
	assert.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestDataFlagOverridesSource(t *testing.T) {
	app := testApp(t)
	root := NewRootCmd(func(cfg *config.Config, logger *slog.Logger) (*App, error) {
		assert.Equal(t, "other.json", cfg.DataSource)
		app.Config = cfg
		return app, nil
	})
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--data", "other.json", "days"})
	require.NoError(t, root.Execute())
}

type failingShutdown struct{ calls int }

func (f *failingShutdown) Shutdown(context.Context) error {
	f.calls++
	return context.DeadlineExceeded
}

func TestShutdownOnDone_LogsShutdownError(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	srv := &failingShutdown{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	shutdownOnDone(ctx, srv, logger, &out)

	assert.Equal(t, 1, srv.calls)
	assert.Contains(t, out.String(), "Shutting down server")
	assert.Contains(t, logs.String(), "server_shutdown_failed")
	assert.Contains(t, logs.String(), "deadline exceeded")
}
