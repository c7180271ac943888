package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/polypal/internal/app"
	"github.com/at-ishikawa/polypal/internal/flashcard"
	"github.com/at-ishikawa/polypal/internal/inference"
)

func newCardsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "cards",
		Short: "Manage flashcards",
	}
	command.AddCommand(
		newCardsListCommand(),
		newCardsAddCommand(),
		newCardsRemoveCommand(),
		newCardsExportCommand(),
	)
	return command
}

func printCards(output io.Writer, cards []flashcard.Card) {
	for _, card := range cards {
		_, _ = fmt.Fprintf(output, "%s\t[%s] %s → %s\n", card.ID, card.Deck, card.Front, card.Back)
	}
}

func newCardsListCommand() *cobra.Command {
	var deck DeckFlag
	command := &cobra.Command{
		Use:   "list",
		Short: "List flashcards, personal cards first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(application *app.App) error {
				if deck == "" {
					printCards(cmd.OutOrStdout(), application.Flashcards.All())
					return nil
				}
				printCards(cmd.OutOrStdout(), application.Flashcards.Cards(flashcard.Deck(deck)))
				return nil
			})
		},
	}
	command.Flags().Var(&deck, "deck", "Deck to list. Options: built-in, personal")
	return command
}

func newCardsAddCommand() *cobra.Command {
	var example string
	var lookup bool
	command := &cobra.Command{
		Use:   "add <front> [back]",
		Short: "Add a personal flashcard",
		Long:  "Add a personal flashcard. With --lookup, the back of the card is drafted by the tutor.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), true, func(application *app.App) error {
				front := args[0]
				var back string
				if len(args) == 2 {
					back = args[1]
				}

				if lookup {
					if !application.Lookup.IsConfigured() {
						return inference.ErrNotConfigured
					}
					draft, err := application.Lookup.CreateFlashcard(cmd.Context(), front)
					if err != nil {
						return fmt.Errorf("lookup.CreateFlashcard(%s) > %w", front, err)
					}
					if draft.Fallback {
						return fmt.Errorf("could not draft a card for %q: %s", front, draft.Back)
					}
					front, back = draft.Front, draft.Back
					if example == "" {
						example = draft.Hint
					}
				}

				card, created, err := application.Flashcards.Add(front, back, example)
				if errors.Is(err, flashcard.ErrInvalidCard) {
					return fmt.Errorf("%w: pass the back of the card or use --lookup", err)
				}
				if err != nil {
					return fmt.Errorf("flashcards.Add() > %w", err)
				}
				if !created {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Card already exists: %s → %s\n", card.Front, card.Back)
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s → %s\n", card.ID, card.Front, card.Back)
				return nil
			})
		},
	}
	command.Flags().StringVar(&example, "example", "", "Example sentence")
	command.Flags().BoolVar(&lookup, "lookup", false, "Draft the card with the tutor")
	return command
}

func newCardsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a personal flashcard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), true, func(application *app.App) error {
				if !application.Flashcards.Remove(args[0]) {
					return fmt.Errorf("personal flashcard %q not found", args[0])
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}

func newCardsExportCommand() *cobra.Command {
	var generatePDF bool
	command := &cobra.Command{
		Use:   "export",
		Short: "Export every deck as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(application *app.App) error {
				path, err := application.Exporter.FlashcardsFile(
					application.Flashcards.Cards(flashcard.DeckBuiltIn),
					application.Flashcards.Cards(flashcard.DeckPersonal),
					generatePDF,
				)
				if err != nil {
					return fmt.Errorf("exporter.FlashcardsFile() > %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
				return nil
			})
		},
	}
	command.Flags().BoolVar(&generatePDF, "pdf", false, "Convert the markdown output to PDF")
	return command
}
