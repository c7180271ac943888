package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/polypal/internal/app"
	"github.com/at-ishikawa/polypal/internal/bootstrap"
	"github.com/at-ishikawa/polypal/internal/config"
	"github.com/at-ishikawa/polypal/internal/server"
)

var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "polypal-server",
		Short:         "PolyPal tutor HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	return rootCmd
}

func run(ctx context.Context) error {
	lifecycle := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("app.New() > %w", err)
	}
	lifecycle.AddShutdownHook(func(context.Context) error {
		return application.Close()
	})
	lifecycle.AddShutdownHook(application.Save)

	handler, err := server.NewHandler(application.ServerDependencies())
	if err != nil {
		_ = application.Close()
		return fmt.Errorf("server.NewHandler() > %w", err)
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h2c.NewHandler(handler.HTTPHandler(cfg.Server.CORS.AllowedOrigins), &http2.Server{}),
	}
	lifecycle.AddShutdownHook(srv.Shutdown)

	return lifecycle.Run(ctx, func(ctx context.Context) error {
		logger.Info("Starting server",
			"addr", srv.Addr,
			"storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	options := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, options))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, options))
}
