package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/polypal/internal/app"
	"github.com/at-ishikawa/polypal/internal/dictionary"
)

func newTranslateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <word>...",
		Short: "Translate French words into Spanish",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(application *app.App) error {
				output := cmd.OutOrStdout()
				for _, word := range args {
					translation, err := application.Translator.Translate(cmd.Context(), word)
					if errors.Is(err, dictionary.ErrNotTranslatable) {
						_, _ = fmt.Fprintf(output, "%s: no translation available\n", word)
						continue
					}
					if err != nil {
						return fmt.Errorf("translator.Translate(%s) > %w", word, err)
					}

					_, _ = fmt.Fprintf(output, "%s → %s\n", translation.Word, translation.Translation)
					if translation.PartOfSpeech != "" {
						_, _ = fmt.Fprintf(output, "  (%s) %s\n", translation.PartOfSpeech, translation.Definition)
					}
					for _, example := range translation.Examples {
						_, _ = fmt.Fprintf(output, "  - %s\n", example)
					}
				}
				return nil
			})
		},
	}
}
