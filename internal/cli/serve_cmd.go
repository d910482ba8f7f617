package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/londonapp/internal/itinerary"
	"github.com/alexanderramin/londonapp/internal/server"
)

// shutdownTimeout bounds how long in-flight requests may finish.
const shutdownTimeout = 5 * time.Second

func newServeCmd(app *App) *cobra.Command {
	var (
		port     int
		file     string
		allowAll bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the itinerary document and JSON views over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.config()
			if !cmd.Flags().Changed("port") {
				port = cfg.Server.Port
			}
			if !cmd.Flags().Changed("allow-all") {
				allowAll = cfg.Server.AllowAll
			}

			loader := app.Loader
			if file != "" {
				loader = itinerary.NewLoader(file, itinerary.Options{
					Timeout: cfg.LoadTimeout(),
					Logger:  app.logger(),
				})
			}
			doc, trip, err := loader.LoadRaw(cmd.Context())
			if err != nil {
				return err
			}

			srv, err := server.New(server.Config{Port: port, AllowAll: allowAll}, server.Deps{
				Document:  doc,
				Trip:      trip,
				Catalog:   app.Catalog,
				Palette:   app.Palette,
				Providers: app.Providers,
				Logger:    app.logger(),
			})
			if err != nil {
				return err
			}

			// Graceful shutdown.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go shutdownOnDone(ctx, srv, app.logger(), cmd.ErrOrStderr())

			fmt.Fprintf(cmd.ErrOrStderr(), "londonapp server starting on port %d\n", port)
			fmt.Fprintf(cmd.ErrOrStderr(), "  Days: %d\n", len(trip.Days))
			return srv.Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVar(&file, "file", "", "Serve this document instead of data_source")
	cmd.Flags().BoolVar(&allowAll, "allow-all", false, "Allow all CORS origins")
	return cmd
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdownOnDone stops srv once ctx is done, giving in-flight requests
// shutdownTimeout to finish.
func shutdownOnDone(ctx context.Context, srv shutdowner, logger *slog.Logger, out io.Writer) {
	<-ctx.Done()
	fmt.Fprintln(out, "\nShutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}
}
