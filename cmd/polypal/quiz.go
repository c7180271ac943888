package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/polypal/internal/app"
	"github.com/at-ishikawa/polypal/internal/cli"
	"github.com/at-ishikawa/polypal/internal/flashcard"
)

func newQuizCommand() *cobra.Command {
	deck := DeckFlag(flashcard.DeckBuiltIn)
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Multiple-choice quiz over a flashcard deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(application *app.App) error {
				quizCLI, err := cli.NewQuizCLI(
					application.Flashcards.Cards(flashcard.Deck(deck)),
					application.Quiz,
					cli.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
				)
				if err != nil {
					return fmt.Errorf("cli.NewQuizCLI(%s) > %w", deck, err)
				}
				quizCLI.ShuffleCards(rand.New(rand.NewSource(time.Now().UnixNano())))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting quiz with %d cards\n\n", quizCLI.GetCardCount())

				return quizCLI.Run(cmd.Context(), quizCLI)
			})
		},
	}
	command.Flags().Var(&deck, "deck", "Deck to practice. Options: built-in, personal")
	return command
}
