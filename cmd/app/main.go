package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"checkout/cmd"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var envFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "checkout",
		Short:         "Multi-step checkout wizard service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	root.AddCommand(serveCmd(), migrateCmd(), pickupPointsCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return serve(ctx, configs, newLogger())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database and the checkout_sessions table",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}

			if err = cmd.CreateDatabaseIfNotExists(c.Context(), configs); err != nil {
				return err
			}
			db, err := cmd.OpenDatabase(configs)
			if err != nil {
				return err
			}
			if err = cmd.Migrate(db); err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "Database %s migrated\n", configs.DBName)
			return nil
		},
	}
}

func pickupPointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pickup-points",
		Short: "Print the configured pickup points in display order",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.OutOrStdout(), strings.Join(configs.PickupPoints, "\n"))
			return nil
		},
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func serve(ctx context.Context, configs cmd.Config, logger *slog.Logger) (err error) {
	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, app.Close())
	}()

	e, err := cmd.NewWebServer(app, logger)
	if err != nil {
		return err
	}

	if configs.SessionIdleTimeout > 0 {
		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.InfoContext(gctx, "HTTP server listening", "addr", addr)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
