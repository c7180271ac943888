// Package quiz builds multiple-choice rounds from a flashcard deck.
package quiz

import (
	"errors"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/at-ishikawa/polypal/internal/flashcard"
)

const (
	OptionCount     = 4
	distractorCount = OptionCount - 1
)

var ErrNotEnoughCards = errors.New("a quiz needs at least 4 cards")

var fillers = []string{"palabra", "respuesta", "opción", "texto", "ejemplo"}

// Generator is safe for concurrent use
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator uses rng for every shuffle; nil seeds one from the clock
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

func (g *Generator) shuffle(values []string) {
	g.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// Options returns the back of the current card and three distractors in a
// random order. Distractors come from the other cards of the deck and are
// padded with filler words. Decks of fewer than 4 cards get no options.
func (g *Generator) Options(current flashcard.Card, deck []flashcard.Card) []string {
	if len(deck) < OptionCount {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	others := make([]string, 0, len(deck))
	for _, card := range deck {
		if card.ID != current.ID {
			others = append(others, card.Back)
		}
	}
	g.shuffle(others)
	distractors := others[:min(distractorCount, len(others))]

	if len(distractors) < distractorCount {
		candidates := slices.Clone(fillers)
		g.shuffle(candidates)
		for _, filler := range candidates {
			if len(distractors) == distractorCount {
				break
			}
			if filler == current.Back || slices.Contains(distractors, filler) {
				continue
			}
			distractors = append(distractors, filler)
		}
	}

	options := append([]string{current.Back}, distractors...)
	g.shuffle(options)
	return options
}

type Round struct {
	CardID  string   `json:"cardId"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"-"`
}

func (g *Generator) NewRound(current flashcard.Card, deck []flashcard.Card) (Round, error) {
	options := g.Options(current, deck)
	if len(options) == 0 {
		return Round{}, ErrNotEnoughCards
	}
	return Round{
		CardID:  current.ID,
		Prompt:  current.Front,
		Options: options,
		Answer:  current.Back,
	}, nil
}

// Check reports whether choice is the correct answer
func (r Round) Check(choice string) bool {
	return choice == r.Answer
}

// Score counts the correct answers of a quiz session
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

func (s *Score) Record(correct bool) {
	s.Total++
	if correct {
		s.Correct++
	}
}
