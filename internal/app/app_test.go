package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/polypal/internal/config"
	"github.com/at-ishikawa/polypal/internal/errorlog"
	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/server"
	"github.com/at-ishikawa/polypal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestConfig(t *testing.T, cfgPath string) *config.Config {
	t.Helper()
	loader, err := config.NewConfigLoader(cfgPath)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)
	return cfg
}

func TestNew_FileStorage(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	tmpDir := t.TempDir()
	cfg := loadTestConfig(t, testutil.SetupTestConfig(t, tmpDir))
	dataDir := filepath.Join(tmpDir, "data")
	testutil.CreatePersonalCards(t, dataDir, flashcard.Card{ID: "card-1", Front: "fromage", Back: "queso"})
	testutil.CreateErrorLog(t, dataDir, errorlog.Entry{ID: "error-1", OriginalText: "Je suis 20 ans", CorrectedText: "J'ai 20 ans"})

	ctx := context.Background()
	app, err := New(ctx, cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, app.Close())
	})

	personal := app.Flashcards.Cards(flashcard.DeckPersonal)
	require.Len(t, personal, 1)
	assert.Equal(t, "fromage", personal[0].Front)
	assert.Equal(t, 1, app.ErrorLog.Len())
	assert.False(t, app.Client.IsConfigured())
	assert.True(t, app.Settings.CulturalTipsEnabled())

	_, created, err := app.Flashcards.Add("pomme", "manzana", "")
	require.NoError(t, err)
	require.True(t, created)
	require.NoError(t, app.Save(ctx))

	reloaded, err := New(ctx, cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = reloaded.Close()
	})
	assert.Len(t, reloaded.Flashcards.Cards(flashcard.DeckPersonal), 2)
}

func TestNew_UnreadableDataUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := loadTestConfig(t, testutil.SetupTestConfig(t, tmpDir))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "data", "polypal-settings.yml"), []byte("{not yaml"), 0644))

	app, err := New(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer func() {
		_ = app.Close()
	}()
	assert.True(t, app.Settings.AutoCorrectionsEnabled())
}

func TestNew_StorageDrivers(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr error
	}{
		{
			name:   "memory",
			driver: config.StorageDriverMemory,
		},
		{
			name:    "unknown",
			driver:  "redis",
			wantErr: ErrUnknownDriver,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Storage: config.StorageConfig{Driver: tt.driver},
				Gemini:  config.GeminiConfig{BaseURL: "http://127.0.0.1:0"},
			}
			app, err := New(context.Background(), cfg, discardLogger())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer func() {
				_ = app.Close()
			}()
			assert.NoError(t, app.Save(context.Background()))

			_, err = server.NewHandler(app.ServerDependencies())
			assert.NoError(t, err)
		})
	}
}
