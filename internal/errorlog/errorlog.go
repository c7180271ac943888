// Package errorlog keeps the corrections a learner chose to review later.
package errorlog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/at-ishikawa/polypal/internal/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const DefaultRecentLimit = 10

type Entry struct {
	ID            string    `json:"id" yaml:"id"`
	OriginalText  string    `json:"originalText" yaml:"original_text"`
	CorrectedText string    `json:"correctedText" yaml:"corrected_text"`
	Explanation   string    `json:"explanation" yaml:"explanation"`
	Timestamp     time.Time `json:"timestamp" yaml:"timestamp"`
}

type Store struct {
	storage storage.Store
	newID   func() (string, error)
	now     func() time.Time

	mu sync.RWMutex
	// newest first
	entries []Entry
}

type Option func(*Store)

func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(store storage.Store, opts ...Option) *Store {
	s := &Store{
		storage: store,
		newID: func() (string, error) {
			return gonanoid.New()
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory log with the saved one, if any
func (s *Store) Load(ctx context.Context) error {
	var entries []Entry
	err := s.storage.Load(ctx, storage.KeyErrorLog, &entries)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage.Load(%s) > %w", storage.KeyErrorLog, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	return nil
}

func (s *Store) Save(ctx context.Context) error {
	entries := s.List()
	if err := s.storage.Save(ctx, storage.KeyErrorLog, entries); err != nil {
		return fmt.Errorf("storage.Save(%s) > %w", storage.KeyErrorLog, err)
	}
	return nil
}

// Add records a correction. The same original and corrected pair is only
// recorded once; a duplicate returns the existing entry and false.
func (s *Store) Add(originalText, correctedText, explanation string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.OriginalText == originalText && entry.CorrectedText == correctedText {
			return entry, false, nil
		}
	}

	id, err := s.newID()
	if err != nil {
		return Entry{}, false, fmt.Errorf("newID() > %w", err)
	}
	entry := Entry{
		ID:            id,
		OriginalText:  originalText,
		CorrectedText: correctedText,
		Explanation:   explanation,
		Timestamp:     s.now(),
	}
	s.entries = slices.Insert(s.entries, 0, entry)
	return entry, true, nil
}

func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := slices.IndexFunc(s.entries, func(entry Entry) bool {
		return entry.ID == id
	})
	if index < 0 {
		return false
	}
	s.entries = slices.Delete(s.entries, index, index+1)
	return true
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// List returns a copy, newest first
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Recent returns at most limit entries; a non-positive limit uses DefaultRecentLimit
func (s *Store) Recent(limit int) []Entry {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	entries := s.List()
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
