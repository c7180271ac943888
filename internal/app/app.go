// Package app builds the tutor's stores and services from a Config. Both the
// terminal client and the HTTP server are wired through it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/polypal/internal/config"
	"github.com/at-ishikawa/polypal/internal/conversation"
	"github.com/at-ishikawa/polypal/internal/database"
	"github.com/at-ishikawa/polypal/internal/dictionary"
	"github.com/at-ishikawa/polypal/internal/errorlog"
	"github.com/at-ishikawa/polypal/internal/export"
	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/inference/gemini"
	"github.com/at-ishikawa/polypal/internal/quiz"
	"github.com/at-ishikawa/polypal/internal/scenario"
	"github.com/at-ishikawa/polypal/internal/server"
	"github.com/at-ishikawa/polypal/internal/settings"
	"github.com/at-ishikawa/polypal/internal/storage"
	"github.com/at-ishikawa/polypal/schemas"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

type App struct {
	Config *config.Config
	Logger *slog.Logger

	Client       *gemini.Client
	Lookup       *dictionary.GeminiLookup
	Translator   *dictionary.Translator
	Conversation *conversation.Conversation
	Flashcards   *flashcard.Store
	ErrorLog     *errorlog.Store
	Settings     *settings.Store
	Scenarios    *scenario.Catalog
	Quiz         *quiz.Generator
	Exporter     *export.Exporter

	db *sqlx.DB
}

// New opens the configured storage and loads the saved settings, error log
// and personal flashcards. Saved data that cannot be read is logged and
// replaced by defaults.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	store, cache, err := app.openStorage(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.openStorage() > %w", err)
	}

	app.Scenarios, err = scenario.NewCatalog()
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("scenario.NewCatalog() > %w", err)
	}
	static, err := dictionary.NewStaticDictionary()
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("dictionary.NewStaticDictionary() > %w", err)
	}
	app.Flashcards, err = flashcard.NewStore(store)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("flashcard.NewStore() > %w", err)
	}
	app.ErrorLog = errorlog.NewStore(store)
	app.Settings = settings.NewStore(store)

	for name, load := range map[string]func(context.Context) error{
		"settings":   app.Settings.Load,
		"flashcards": app.Flashcards.Load,
		"error log":  app.ErrorLog.Load,
	} {
		if err := load(ctx); err != nil {
			logger.Warn("Failed to load saved data, using defaults",
				"store", name,
				"error", err)
		}
	}

	app.Client = gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.MaxRetryAttempts,
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithTimeout(cfg.Gemini.Timeout()),
	)
	app.Lookup = dictionary.NewGeminiLookup(cfg.Gemini.APIKey, cfg.Gemini.Model,
		dictionary.WithLookupBaseURL(cfg.Gemini.BaseURL),
		dictionary.WithLookupTimeout(cfg.Gemini.Timeout()),
	)
	if !app.Client.IsConfigured() {
		logger.Warn("Gemini API key is not configured, the tutor will not answer")
	}

	translatorOptions := []dictionary.TranslatorOption{
		dictionary.WithRemote(app.Lookup),
		dictionary.WithTranslatorLogger(logger),
	}
	if cache != nil {
		translatorOptions = append(translatorOptions, dictionary.WithPersistentCache(cache))
	}
	app.Translator = dictionary.NewTranslator(static, translatorOptions...)
	app.Conversation = conversation.New(app.Client, app.Settings, app.Scenarios,
		conversation.WithLogger(logger))
	app.Quiz = quiz.NewGenerator(nil)
	app.Exporter = export.NewExporter(cfg.Outputs, cfg.Templates)
	return app, nil
}

func (app *App) openStorage(ctx context.Context) (storage.Store, dictionary.PersistentCache, error) {
	cfg := app.Config
	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		return storage.NewFileStore(cfg.Storage.Directory),
			dictionary.NewFileCache(cfg.Dictionary.CacheDirectory), nil
	case config.StorageDriverMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		applied, err := database.Migrate(ctx, db, schemas.Migrations)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("database.Migrate() > %w", err)
		}
		if len(applied) > 0 {
			app.Logger.Info("Applied migrations", "versions", applied)
		}
		app.db = db
		return storage.NewDBStore(db), dictionary.NewTranslationRepository(db), nil
	case config.StorageDriverMemory:
		return storage.NewMemoryStore(), nil, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Storage.Driver)
}

// Save persists the error log and the personal flashcards. Settings are
// written through on every change.
func (app *App) Save(ctx context.Context) error {
	return errors.Join(
		app.Flashcards.Save(ctx),
		app.ErrorLog.Save(ctx),
	)
}

func (app *App) Close() error {
	var errs []error
	if app.Client != nil {
		errs = append(errs, app.Client.Close())
	}
	if app.db != nil {
		errs = append(errs, app.db.Close())
	}
	return errors.Join(errs...)
}

func (app *App) ServerDependencies() server.Dependencies {
	return server.Dependencies{
		Conversation: app.Conversation,
		Translator:   app.Translator,
		Lookup:       app.Lookup,
		Flashcards:   app.Flashcards,
		ErrorLog:     app.ErrorLog,
		Settings:     app.Settings,
		Scenarios:    app.Scenarios,
		Quiz:         app.Quiz,
		Exporter:     app.Exporter,
		Logger:       app.Logger,
	}
}
