package flashcard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/at-ishikawa/polypal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, backend storage.Store) *Store {
	t.Helper()
	counter := 0
	store, err := NewStore(backend,
		WithIDGenerator(func() (string, error) {
			counter++
			return fmt.Sprintf("card-%d", counter), nil
		}),
		WithClock(func() time.Time { return fixedTime }),
	)
	require.NoError(t, err)
	return store
}

func fronts(cards []Card) []string {
	result := make([]string, 0, len(cards))
	for _, card := range cards {
		result = append(result, card.Front)
	}
	return result
}

func TestNewStore_BuiltInDeck(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())

	builtIn := store.Cards(DeckBuiltIn)
	require.Len(t, builtIn, 30)
	assert.Equal(t, Card{
		ID:        "card-1",
		Front:     "bonjour",
		Back:      "hola",
		Example:   "Bonjour ! Comment allez-vous ?",
		Deck:      DeckBuiltIn,
		CreatedAt: fixedTime,
	}, builtIn[0])
	assert.Equal(t, "trop", builtIn[29].Front)
	assert.Empty(t, store.Cards(DeckPersonal))
	assert.Nil(t, store.Cards(Deck("unknown")))

	other, err := NewStore(storage.NewMemoryStore())
	require.NoError(t, err)
	assert.NotEqual(t, other.Cards(DeckBuiltIn)[0].ID, builtIn[0].ID)
}

func TestStore_Add(t *testing.T) {
	tests := []struct {
		name       string
		front      string
		back       string
		wantAdded  bool
		wantErr    error
		wantFronts []string
	}{
		{
			name:       "new card goes on top",
			front:      "fromage",
			back:       "queso",
			wantAdded:  true,
			wantFronts: []string{"fromage", "chat"},
		},
		{
			name:       "same front in another case is a duplicate",
			front:      "CHAT",
			back:       "gata",
			wantAdded:  false,
			wantFronts: []string{"chat"},
		},
		{
			name:       "built-in fronts are not duplicates of personal cards",
			front:      "bonjour",
			back:       "hola",
			wantAdded:  true,
			wantFronts: []string{"bonjour", "chat"},
		},
		{
			name:       "blank front",
			front:      "  ",
			back:       "nada",
			wantErr:    ErrInvalidCard,
			wantFronts: []string{"chat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, storage.NewMemoryStore())
			_, added, err := store.Add("chat", "gato", "Le chat dort.")
			require.NoError(t, err)
			require.True(t, added)

			card, added, err := store.Add(tt.front, tt.back, "")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAdded, added)
				assert.Equal(t, DeckPersonal, card.Deck)
			}
			assert.Equal(t, tt.wantFronts, fronts(store.Cards(DeckPersonal)))
			assert.Len(t, store.All(), 30+len(tt.wantFronts))
		})
	}
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	first, _, err := store.Add("chat", "gato", "")
	require.NoError(t, err)
	_, _, err = store.Add("chien", "perro", "")
	require.NoError(t, err)

	builtIn := store.Cards(DeckBuiltIn)[0]
	assert.False(t, store.Remove(builtIn.ID))
	assert.False(t, store.Remove("missing"))
	assert.True(t, store.Remove(first.ID))
	assert.Equal(t, []string{"chien"}, fronts(store.Cards(DeckPersonal)))

	_, ok := store.Find(first.ID)
	assert.False(t, ok)
	found, ok := store.Find(builtIn.ID)
	assert.True(t, ok)
	assert.Equal(t, builtIn, found)
}

func TestStore_Cursor(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	_, _, err := store.Add("chat", "gato", "")
	require.NoError(t, err)

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "bonjour", current.Front)

	previous, ok := store.Previous()
	require.True(t, ok)
	assert.Equal(t, "chat", previous.Front)
	assert.Equal(t, 30, store.Position())

	next, ok := store.Next()
	require.True(t, ok)
	assert.Equal(t, "bonjour", next.Front)

	next, _ = store.Next()
	assert.Equal(t, "merci", next.Front)

	assert.True(t, store.ToggleAnswer())
	assert.True(t, store.AnswerShown())
	store.Next()
	assert.False(t, store.AnswerShown())

	store.ToggleAnswer()
	store.Reset()
	assert.Equal(t, 0, store.Position())
	assert.False(t, store.AnswerShown())
	assert.Len(t, store.All(), 31)
}

func TestStore_Cursor_ClampedAfterRemove(t *testing.T) {
	store := newTestStore(t, storage.NewMemoryStore())
	card, _, err := store.Add("chat", "gato", "")
	require.NoError(t, err)

	store.Previous()
	assert.Equal(t, 30, store.Position())
	require.True(t, store.Remove(card.ID))
	assert.Equal(t, 29, store.Position())

	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "trop", current.Front)
}

func TestStore_SaveLoad(t *testing.T) {
	backend := storage.NewMemoryStore()
	ctx := context.Background()

	store := newTestStore(t, backend)
	_, _, err := store.Add("chat", "gato", "Le chat dort.")
	require.NoError(t, err)
	_, _, err = store.Add("chien", "perro", "")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx))

	var saved []Card
	require.NoError(t, backend.Load(ctx, storage.KeyFlashcards, &saved))
	assert.Equal(t, []string{"chien", "chat"}, fronts(saved))

	reloaded := newTestStore(t, backend)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, store.Cards(DeckPersonal), reloaded.Cards(DeckPersonal))
	assert.Len(t, reloaded.Cards(DeckBuiltIn), 30)
}
