package cli

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/quiz"
)

// QuizCLI asks one multiple-choice question per card of a deck
type QuizCLI struct {
	*InteractiveCLI
	generator *quiz.Generator
	deck      []flashcard.Card
	cards     []flashcard.Card
	score     quiz.Score
}

func NewQuizCLI(deck []flashcard.Card, generator *quiz.Generator, opts ...Option) (*QuizCLI, error) {
	if len(deck) < quiz.OptionCount {
		return nil, quiz.ErrNotEnoughCards
	}
	return &QuizCLI{
		InteractiveCLI: newInteractiveCLI(opts...),
		generator:      generator,
		deck:           deck,
		cards:          slices.Clone(deck),
	}, nil
}

// ShuffleCards shuffles the remaining cards
func (q *QuizCLI) ShuffleCards(rng *rand.Rand) {
	rng.Shuffle(len(q.cards), func(i, j int) {
		q.cards[i], q.cards[j] = q.cards[j], q.cards[i]
	})
}

func (q *QuizCLI) GetCardCount() int {
	return len(q.cards)
}

func (q *QuizCLI) Score() quiz.Score {
	return q.score
}

func (q *QuizCLI) Session(ctx context.Context) error {
	if len(q.cards) == 0 {
		q.printScore()
		return errEnd
	}
	currentCard := q.cards[0]

	round, err := q.generator.NewRound(currentCard, q.deck)
	if err != nil {
		return fmt.Errorf("generator.NewRound() > %w", err)
	}
	q.printf("¿Qué significa %s?\n", q.bold.Sprint(round.Prompt))
	for i, option := range round.Options {
		q.printf("  %d) %s\n", i+1, option)
	}
	_, _ = q.bold.Fprint(q.stdoutWriter, "Respuesta (q para salir): ")

	input, err := q.readLine()
	if err != nil {
		return err
	}
	if strings.EqualFold(input, "q") {
		q.printScore()
		return errEnd
	}
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(round.Options) {
		q.printf("Elige un número del 1 al %d.\n\n", len(round.Options))
		return nil
	}

	correct := round.Check(round.Options[choice-1])
	q.score.Record(correct)
	if correct {
		q.printf("✅ ")
		_, _ = q.green.Fprintln(q.stdoutWriter, "¡Correcto!")
	} else {
		q.printf("❌ ")
		_, _ = q.red.Fprintf(q.stdoutWriter, "Incorrecto. %s significa %q\n", round.Prompt, round.Answer)
	}
	if currentCard.Example != "" {
		q.printf("   %s\n", q.italic.Sprint(currentCard.Example))
	}
	q.println()

	q.cards = q.cards[1:]
	return nil
}

func (q *QuizCLI) printScore() {
	q.printf("Puntuación: %d/%d\n", q.score.Correct, q.score.Total)
}
