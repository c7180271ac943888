package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/at-ishikawa/polypal/internal/storage"
)

var ErrUnknownSetting = errors.New("unknown setting")

type Settings struct {
	CulturalTipsEnabled    bool `json:"culturalTipsEnabled" yaml:"cultural_tips_enabled"`
	AutoCorrectionsEnabled bool `json:"autoCorrectionsEnabled" yaml:"auto_corrections_enabled"`
	VoiceEnabled           bool `json:"voiceEnabled" yaml:"voice_enabled"`
}

// Key names accepted by Update, matching the JSON field names
const (
	KeyCulturalTips    = "culturalTipsEnabled"
	KeyAutoCorrections = "autoCorrectionsEnabled"
	KeyVoice           = "voiceEnabled"
)

func Keys() []string {
	return []string{KeyCulturalTips, KeyAutoCorrections, KeyVoice}
}

func Defaults() Settings {
	return Settings{
		CulturalTipsEnabled:    true,
		AutoCorrectionsEnabled: true,
		VoiceEnabled:           true,
	}
}

// Store holds the current settings and writes every change through to storage
type Store struct {
	storage storage.Store

	mu       sync.RWMutex
	settings Settings
}

func NewStore(store storage.Store) *Store {
	return &Store{
		storage:  store,
		settings: Defaults(),
	}
}

// Load merges the saved settings over the defaults. A missing or unreadable
// record keeps the defaults.
func (s *Store) Load(ctx context.Context) error {
	loaded := Defaults()
	err := s.storage.Load(ctx, storage.KeySettings, &loaded)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		slog.Default().Warn("Failed to load settings, using defaults",
			"error", err)
		return fmt.Errorf("storage.Load(%s) > %w", storage.KeySettings, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = loaded
	return nil
}

func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) CulturalTipsEnabled() bool {
	return s.Get().CulturalTipsEnabled
}

func (s *Store) AutoCorrectionsEnabled() bool {
	return s.Get().AutoCorrectionsEnabled
}

// Update changes one toggle and persists the whole record. The in-memory
// value is kept even when persisting fails.
func (s *Store) Update(ctx context.Context, key string, value bool) (Settings, error) {
	s.mu.Lock()
	updated := s.settings
	switch key {
	case KeyCulturalTips:
		updated.CulturalTipsEnabled = value
	case KeyAutoCorrections:
		updated.AutoCorrectionsEnabled = value
	case KeyVoice:
		updated.VoiceEnabled = value
	default:
		s.mu.Unlock()
		return Settings{}, fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	s.settings = updated
	s.mu.Unlock()

	if err := s.storage.Save(ctx, storage.KeySettings, updated); err != nil {
		return updated, fmt.Errorf("storage.Save(%s) > %w", storage.KeySettings, err)
	}
	return updated, nil
}

// Reset restores and persists the defaults
func (s *Store) Reset(ctx context.Context) (Settings, error) {
	defaults := Defaults()
	s.mu.Lock()
	s.settings = defaults
	s.mu.Unlock()

	if err := s.storage.Save(ctx, storage.KeySettings, defaults); err != nil {
		return defaults, fmt.Errorf("storage.Save(%s) > %w", storage.KeySettings, err)
	}
	return defaults, nil
}
