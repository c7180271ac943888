// Package testutil provides shared test helpers for creating config files and storage fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/at-ishikawa/polypal/internal/errorlog"
	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/storage"
	"github.com/stretchr/testify/require"
)

// FixtureTime is the timestamp used by every fixture
var FixtureTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// SetupTestConfig creates a minimal config file and all required directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"data", "translations", "outputs"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  driver: file
  directory: %s
dictionary:
  cache_directory: %s
outputs:
  directory: %s
`,
		filepath.Join(tmpDir, "data"),
		filepath.Join(tmpDir, "translations"),
		filepath.Join(tmpDir, "outputs"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake Gemini API key
// pointing at baseURL, usually an httptest server.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf("gemini:\n  api_key: fake-key-for-testing\n  base_url: %s\n  timeout_seconds: 5\n", baseURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// CreatePersonalCards writes personal flashcards, newest first, into the file store at dataDir.
// Deck and CreatedAt are filled in when unset.
func CreatePersonalCards(t *testing.T, dataDir string, cards ...flashcard.Card) []flashcard.Card {
	t.Helper()

	for i := range cards {
		if cards[i].Deck == "" {
			cards[i].Deck = flashcard.DeckPersonal
		}
		if cards[i].CreatedAt.IsZero() {
			cards[i].CreatedAt = FixtureTime
		}
	}
	require.NoError(t, storage.NewFileStore(dataDir).Save(context.Background(), storage.KeyFlashcards, cards))
	return cards
}

// CreateErrorLog writes error log entries, newest first, into the file store at dataDir.
func CreateErrorLog(t *testing.T, dataDir string, entries ...errorlog.Entry) []errorlog.Entry {
	t.Helper()

	for i := range entries {
		if entries[i].Timestamp.IsZero() {
			entries[i].Timestamp = FixtureTime
		}
	}
	require.NoError(t, storage.NewFileStore(dataDir).Save(context.Background(), storage.KeyErrorLog, entries))
	return entries
}
