// Package flashcard manages the built-in and personal study decks.
package flashcard

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/at-ishikawa/polypal/internal/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gopkg.in/yaml.v3"
)

//go:embed data/common_words.yml
var commonWords []byte

type Deck string

const (
	DeckBuiltIn  Deck = "built-in"
	DeckPersonal Deck = "personal"
)

var ErrInvalidCard = errors.New("flashcard front and back are required")

type Card struct {
	ID        string    `json:"id" yaml:"id"`
	Front     string    `json:"front" yaml:"front"`
	Back      string    `json:"back" yaml:"back"`
	Example   string    `json:"example,omitempty" yaml:"example,omitempty"`
	Deck      Deck      `json:"deck" yaml:"deck"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

type Store struct {
	storage storage.Store
	newID   func() (string, error)
	now     func() time.Time

	mu       sync.RWMutex
	builtIn  []Card
	personal []Card // newest first
	index    int
	shown    bool
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

// NewStore builds the built-in deck with fresh IDs. The personal deck starts
// empty until Load is called.
func NewStore(store storage.Store, opts ...Option) (*Store, error) {
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

	var words []struct {
		Front   string `yaml:"front"`
		Back    string `yaml:"back"`
		Example string `yaml:"example"`
	}
	if err := yaml.Unmarshal(commonWords, &words); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(common words) > %w", err)
	}

	createdAt := s.now()
	s.builtIn = make([]Card, 0, len(words))
	for _, word := range words {
		id, err := s.newID()
		if err != nil {
			return nil, fmt.Errorf("newID() > %w", err)
		}
		s.builtIn = append(s.builtIn, Card{
			ID:        id,
			Front:     word.Front,
			Back:      word.Back,
			Example:   word.Example,
			Deck:      DeckBuiltIn,
			CreatedAt: createdAt,
		})
	}
	return s, nil
}

func (s *Store) Load(ctx context.Context) error {
	var cards []Card
	err := s.storage.Load(ctx, storage.KeyFlashcards, &cards)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage.Load(%s) > %w", storage.KeyFlashcards, err)
	}
	for i := range cards {
		cards[i].Deck = DeckPersonal
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.personal = cards
	s.index = 0
	s.shown = false
	return nil
}

// Save persists the personal deck only
func (s *Store) Save(ctx context.Context) error {
	cards := s.Cards(DeckPersonal)
	if err := s.storage.Save(ctx, storage.KeyFlashcards, cards); err != nil {
		return fmt.Errorf("storage.Save(%s) > %w", storage.KeyFlashcards, err)
	}
	return nil
}

// Add puts a card on top of the personal deck. A card whose front matches an
// existing personal card, ignoring case, is not added; the existing card and
// false are returned instead.
func (s *Store) Add(front, back, example string) (Card, bool, error) {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return Card{}, false, ErrInvalidCard
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, card := range s.personal {
		if strings.EqualFold(card.Front, front) {
			return card, false, nil
		}
	}

	id, err := s.newID()
	if err != nil {
		return Card{}, false, fmt.Errorf("newID() > %w", err)
	}
	card := Card{
		ID:        id,
		Front:     front,
		Back:      back,
		Example:   strings.TrimSpace(example),
		Deck:      DeckPersonal,
		CreatedAt: s.now(),
	}
	s.personal = slices.Insert(s.personal, 0, card)
	s.clampCursor()
	return card, true, nil
}

// Remove deletes a personal card. Built-in cards cannot be removed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := slices.IndexFunc(s.personal, func(card Card) bool {
		return card.ID == id
	})
	if index < 0 {
		return false
	}
	s.personal = slices.Delete(s.personal, index, index+1)
	s.clampCursor()
	return true
}

// Cards returns a copy of one deck
func (s *Store) Cards(deck Deck) []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch deck {
	case DeckBuiltIn:
		return slices.Clone(s.builtIn)
	case DeckPersonal:
		return slices.Clone(s.personal)
	}
	return nil
}

// All returns the built-in deck followed by the personal deck
func (s *Store) All() []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all()
}

func (s *Store) all() []Card {
	return slices.Concat(s.builtIn, s.personal)
}

func (s *Store) Find(id string) (Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, card := range s.all() {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}

func (s *Store) clampCursor() {
	if total := len(s.builtIn) + len(s.personal); s.index >= total {
		s.index = max(total-1, 0)
	}
}

// Current returns the card under the browsing cursor
func (s *Store) Current() (Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cards := s.all()
	if len(cards) == 0 {
		return Card{}, false
	}
	return cards[s.index], true
}

func (s *Store) Position() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// Next moves the cursor forward, wrapping around, and hides the answer
func (s *Store) Next() (Card, bool) {
	s.mu.Lock()
	total := len(s.builtIn) + len(s.personal)
	if total > 0 {
		s.index = (s.index + 1) % total
	}
	s.shown = false
	s.mu.Unlock()
	return s.Current()
}

// Previous moves the cursor backward, wrapping around, and hides the answer
func (s *Store) Previous() (Card, bool) {
	s.mu.Lock()
	total := len(s.builtIn) + len(s.personal)
	if total > 0 {
		s.index = (s.index - 1 + total) % total
	}
	s.shown = false
	s.mu.Unlock()
	return s.Current()
}

// Reset moves the cursor back to the first card without deleting anything
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = 0
	s.shown = false
}

func (s *Store) ToggleAnswer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = !s.shown
	return s.shown
}

func (s *Store) AnswerShown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shown
}
