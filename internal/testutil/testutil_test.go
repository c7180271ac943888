package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/at-ishikawa/polypal/internal/errorlog"
	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "driver: file")
	assert.Contains(t, string(content), "cache_directory")

	for _, d := range []string{"data", "translations", "outputs"} {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestSetupTestConfigWithAPIKey(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithAPIKey(t, tmpDir, "http://127.0.0.1:1234")

	content, err := os.ReadFile(got)
	require.NoError(t, err)

	contentStr := string(content)
	assert.Contains(t, contentStr, "gemini:")
	assert.Contains(t, contentStr, "api_key: fake-key-for-testing")
	assert.Contains(t, contentStr, "base_url: http://127.0.0.1:1234")
	assert.Contains(t, contentStr, "driver: file")
}

func TestSetupTestConfig_configPathsAreAbsolute(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)

	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.Contains(trimmed, ": /") {
			parts := strings.SplitN(trimmed, " ", 2)
			path := parts[len(parts)-1]
			assert.True(t, filepath.IsAbs(path), "path should be absolute: %s", path)
		}
	}
}

func TestCreatePersonalCards(t *testing.T) {
	dataDir := t.TempDir()
	want := CreatePersonalCards(t, dataDir,
		flashcard.Card{ID: "c2", Front: "le chat", Back: "el gato"},
		flashcard.Card{ID: "c1", Front: "le chien", Back: "el perro", Example: "Le chien dort."},
	)

	var got []flashcard.Card
	require.NoError(t, storage.NewFileStore(dataDir).Load(context.Background(), storage.KeyFlashcards, &got))
	assert.Equal(t, want, got)
	assert.Equal(t, flashcard.DeckPersonal, got[0].Deck)
	assert.Equal(t, FixtureTime, got[1].CreatedAt)
}

func TestCreateErrorLog(t *testing.T) {
	dataDir := t.TempDir()
	want := CreateErrorLog(t, dataDir, errorlog.Entry{
		ID:            "e1",
		OriginalText:  "Je suis 20 ans",
		CorrectedText: "J'ai 20 ans",
		Explanation:   "Se usa avoir para la edad.",
	})

	var got []errorlog.Entry
	require.NoError(t, storage.NewFileStore(dataDir).Load(context.Background(), storage.KeyErrorLog, &got))
	assert.Equal(t, want, got)
	assert.Equal(t, FixtureTime, got[0].Timestamp)
}
