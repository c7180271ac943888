package errorlog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/at-ishikawa/polypal/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestStore(backend storage.Store) *Store {
	counter := 0
	return NewStore(backend,
		WithIDGenerator(func() (string, error) {
			counter++
			return fmt.Sprintf("err-%d", counter), nil
		}),
		WithClock(func() time.Time { return fixedTime }),
	)
}

func ids(entries []Entry) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.ID)
	}
	return result
}

func TestStore_Add(t *testing.T) {
	store := newTestStore(storage.NewMemoryStore())

	first, added, err := store.Add("Je suis 20 ans", "J'ai 20 ans", "Se usa avoir para la edad.")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, Entry{
		ID:            "err-1",
		OriginalText:  "Je suis 20 ans",
		CorrectedText: "J'ai 20 ans",
		Explanation:   "Se usa avoir para la edad.",
		Timestamp:     fixedTime,
	}, first)

	_, added, err = store.Add("la problème", "le problème", "Problème es masculino.")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"err-2", "err-1"}, ids(store.List()))

	duplicate, added, err := store.Add("Je suis 20 ans", "J'ai 20 ans", "Otra explicación.")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, "err-1", duplicate.ID)
	assert.Equal(t, 2, store.Len())

	_, added, err = store.Add("Je suis 20 ans", "J'ai vingt ans", "Otra corrección.")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 3, store.Len())
}

func TestStore_Add_IDError(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), WithIDGenerator(func() (string, error) {
		return "", errors.New("entropy exhausted")
	}))
	_, added, err := store.Add("a", "b", "c")
	assert.Error(t, err)
	assert.False(t, added)
	assert.Zero(t, store.Len())
}

func TestStore_Remove(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    bool
		wantIDs []string
	}{
		{name: "middle entry keeps the order of the others", id: "err-2", want: true, wantIDs: []string{"err-3", "err-1"}},
		{name: "newest entry", id: "err-3", want: true, wantIDs: []string{"err-2", "err-1"}},
		{name: "unknown id", id: "err-9", want: false, wantIDs: []string{"err-3", "err-2", "err-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(storage.NewMemoryStore())
			for i := 1; i <= 3; i++ {
				_, _, err := store.Add(fmt.Sprintf("original %d", i), fmt.Sprintf("corrected %d", i), "")
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, store.Remove(tt.id))
			assert.Equal(t, tt.wantIDs, ids(store.List()))
		})
	}
}

func TestStore_RecentAndClear(t *testing.T) {
	store := newTestStore(storage.NewMemoryStore())
	for i := 1; i <= 12; i++ {
		_, _, err := store.Add(fmt.Sprintf("original %d", i), "corrected", "")
		require.NoError(t, err)
	}

	assert.Len(t, store.Recent(0), DefaultRecentLimit)
	assert.Equal(t, []string{"err-12", "err-11", "err-10"}, ids(store.Recent(3)))
	assert.Len(t, store.Recent(50), 12)

	list := store.List()
	list[0].OriginalText = "mutated"
	assert.Equal(t, "original 12", store.List()[0].OriginalText)

	store.Clear()
	assert.Zero(t, store.Len())
	assert.Empty(t, store.Recent(5))
}

func TestStore_SaveLoad(t *testing.T) {
	backend := storage.NewMemoryStore()
	ctx := context.Background()

	store := newTestStore(backend)
	require.NoError(t, store.Load(ctx))
	assert.Zero(t, store.Len())

	_, _, err := store.Add("il a allé", "il est allé", "Aller usa être.")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx))

	reloaded := newTestStore(backend)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, store.List(), reloaded.List())
}
