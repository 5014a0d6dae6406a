package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"school/cmd"
	"school/internal/adapters/out/postgres"
	"school/internal/pkg/logging"
	"school/internal/pkg/telemetry"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "school",
		Short:         "School management service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	root.AddCommand(serveCmd(), migrateCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func bootstrap() (cmd.Config, *slog.Logger, error) {
	cfg, err := cmd.LoadConfig(configPath)
	if err != nil {
		return cmd.Config{}, nil, err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}

			db, err := cmd.OpenDB(c.Context(), cfg.DB, logger)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			if err := postgres.Migrate(c.Context(), db); err != nil {
				return fmt.Errorf("migrating: %w", err)
			}
			logger.InfoContext(c.Context(), "Schema is up to date", "db", cfg.DB.Name)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var migrate bool
	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			return serve(c.Context(), cfg, logger, migrate)
		},
	}
	command.Flags().BoolVar(&migrate, "migrate", false, "migrate the schema before serving")
	return command
}

func serve(ctx context.Context, cfg cmd.Config, logger *slog.Logger, migrate bool) (err error) {
	providers, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		err = errors.Join(err, providers.Shutdown(shutdownCtx))
	}()

	db, err := cmd.OpenDB(ctx, cfg.DB, logger)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	if migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
	}

	app, err := cmd.NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}

	if cfg.Cleanup.Enabled {
		jobManager := app.CreateJobManager()
		if err := jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	e, err := app.CreateHTTPServer()
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server started", "port", cfg.HTTP.Port)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%d", cfg.HTTP.Port))
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
