package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/at-ishikawa/polypal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	loadErr error
	saveErr error
}

func (s failingStore) Load(context.Context, string, any) error { return s.loadErr }
func (s failingStore) Save(context.Context, string, any) error { return s.saveErr }

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name    string
		saved   any
		want    Settings
		wantErr bool
	}{
		{
			name: "nothing saved keeps the defaults",
			want: Defaults(),
		},
		{
			name:  "saved record replaces the defaults",
			saved: Settings{CulturalTipsEnabled: false, AutoCorrectionsEnabled: true, VoiceEnabled: false},
			want:  Settings{CulturalTipsEnabled: false, AutoCorrectionsEnabled: true, VoiceEnabled: false},
		},
		{
			name:  "missing keys fall back to the defaults",
			saved: map[string]bool{"voiceEnabled": false},
			want:  Settings{CulturalTipsEnabled: true, AutoCorrectionsEnabled: true, VoiceEnabled: false},
		},
		{
			name:  "unknown keys are ignored",
			saved: map[string]any{"theme": "dark", "culturalTipsEnabled": false},
			want:  Settings{CulturalTipsEnabled: false, AutoCorrectionsEnabled: true, VoiceEnabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := storage.NewMemoryStore()
			if tt.saved != nil {
				require.NoError(t, backend.Save(context.Background(), storage.KeySettings, tt.saved))
			}

			store := NewStore(backend)
			err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Get())
		})
	}
}

func TestStore_Load_Error(t *testing.T) {
	store := NewStore(failingStore{loadErr: errors.New("permission denied")})
	assert.Error(t, store.Load(context.Background()))
	assert.Equal(t, Defaults(), store.Get())
}

func TestStore_Update(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   bool
		want    Settings
		wantErr error
	}{
		{
			name:  "cultural tips",
			key:   KeyCulturalTips,
			value: false,
			want:  Settings{CulturalTipsEnabled: false, AutoCorrectionsEnabled: true, VoiceEnabled: true},
		},
		{
			name:  "auto corrections",
			key:   KeyAutoCorrections,
			value: false,
			want:  Settings{CulturalTipsEnabled: true, AutoCorrectionsEnabled: false, VoiceEnabled: true},
		},
		{
			name:  "voice",
			key:   KeyVoice,
			value: false,
			want:  Settings{CulturalTipsEnabled: true, AutoCorrectionsEnabled: true, VoiceEnabled: false},
		},
		{
			name:    "unknown key",
			key:     "darkMode",
			value:   true,
			want:    Defaults(),
			wantErr: ErrUnknownSetting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := storage.NewMemoryStore()
			store := NewStore(backend)

			_, err := store.Update(context.Background(), tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.want, store.Get())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Get())

			var saved Settings
			require.NoError(t, backend.Load(context.Background(), storage.KeySettings, &saved))
			assert.Equal(t, tt.want, saved)
		})
	}
}

func TestStore_Update_SaveError(t *testing.T) {
	store := NewStore(failingStore{saveErr: errors.New("disk full")})
	got, err := store.Update(context.Background(), KeyVoice, false)
	assert.Error(t, err)
	assert.False(t, got.VoiceEnabled)
	assert.False(t, store.Get().VoiceEnabled)
}

func TestStore_Reset(t *testing.T) {
	backend := storage.NewMemoryStore()
	store := NewStore(backend)
	ctx := context.Background()

	_, err := store.Update(ctx, KeyCulturalTips, false)
	require.NoError(t, err)
	assert.False(t, store.CulturalTipsEnabled())

	got, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
	assert.True(t, store.CulturalTipsEnabled())
	assert.True(t, store.AutoCorrectionsEnabled())

	var saved Settings
	require.NoError(t, backend.Load(ctx, storage.KeySettings, &saved))
	assert.Equal(t, Defaults(), saved)
}
