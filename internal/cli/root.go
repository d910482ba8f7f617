package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/londonapp/internal/config"
)

// Setup builds the App once configuration and logging are ready.
type Setup func(cfg *config.Config, logger *slog.Logger) (*App, error)

// DefaultSetup wires the production services.
func DefaultSetup(cfg *config.Config, logger *slog.Logger) (*App, error) {
	return NewApp(cfg, logger), nil
}

// NewRootCmd creates the top-level "londonapp" command and registers all
// subcommands. The App is built by setup before any command runs.
func NewRootCmd(setup Setup) *cobra.Command {
	var (
		cfgFile    string
		dataSource string
		closeLog   func() error
	)
	app := &App{}

	root := &cobra.Command{
		Use:           "londonapp",
		Short:         "London trip itinerary viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if dataSource != "" {
				cfg.DataSource = dataSource
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			sink := &logSink{}
			logger, closer, err := cfg.NewLogger(sink)
			if err != nil {
				return err
			}
			closeLog = closer

			built, err := setup(cfg, logger)
			if err != nil {
				return err
			}
			if built.Config == nil {
				built.Config = cfg
			}
			if built.Logger == nil {
				built.Logger = logger
			}
			*app = *built
			sink.w = logFallback(cmd, app)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd.Context(), app)
			}
			return printOverview(cmd, app)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "Path to the config file")
	root.PersistentFlags().StringVar(&dataSource, "data", "", "Itinerary document path or URL (overrides data_source)")

	root.AddCommand(
		newDaysCmd(app),
		newDayCmd(app),
		newIdeasCmd(app),
		newMapCmd(app),
		newServeCmd(app),
		newConfigCmd(app),
	)

	return root
}

// logFallback picks where logs go when no log file is configured. The TUI
// owns the terminal, so an interactive root run discards them.
func logFallback(cmd *cobra.Command, app *App) io.Writer {
	if cmd == cmd.Root() && app.interactive() {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}

// logSink drops output until the App has decided where logs go.
type logSink struct{ w io.Writer }

func (s *logSink) Write(p []byte) (int, error) {
	if s.w == nil {
		return len(p), nil
	}
	return s.w.Write(p)
}
