package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/polypal/internal/app"
	"github.com/at-ishikawa/polypal/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	application, err := app.New(ctx, cfg, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("app.New() > %w", err)
	}
	return application, nil
}

// withApp runs fn and closes the app afterwards. Changes are saved only when
// fn succeeds.
func withApp(ctx context.Context, save bool, fn func(*app.App) error) error {
	application, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Default().Warn("Failed to close the app", "error", err)
		}
	}()

	if err := fn(application); err != nil {
		return err
	}
	if save {
		if err := application.Save(ctx); err != nil {
			return fmt.Errorf("app.Save() > %w", err)
		}
	}
	return nil
}
