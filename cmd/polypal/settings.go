package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/polypal/internal/app"
	"github.com/at-ishikawa/polypal/internal/settings"
)

func newSettingsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "settings",
		Short: "Show and change the tutor settings",
	}
	command.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the current settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), false, func(application *app.App) error {
					printSettings(cmd.OutOrStdout(), application.Settings.Get())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:       "set <key> <true|false>",
			Short:     "Change one setting",
			Args:      cobra.ExactArgs(2),
			ValidArgs: settings.Keys(),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := strconv.ParseBool(args[1])
				if err != nil {
					return fmt.Errorf("invalid value %q for %s: %w", args[1], args[0], err)
				}
				return withApp(cmd.Context(), false, func(application *app.App) error {
					updated, err := application.Settings.Update(cmd.Context(), args[0], value)
					if err != nil {
						return fmt.Errorf("settings.Update() > %w", err)
					}
					printSettings(cmd.OutOrStdout(), updated)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd.Context(), false, func(application *app.App) error {
					defaults, err := application.Settings.Reset(cmd.Context())
					if err != nil {
						return fmt.Errorf("settings.Reset() > %w", err)
					}
					printSettings(cmd.OutOrStdout(), defaults)
					return nil
				})
			},
		},
	)
	return command
}

func printSettings(output io.Writer, current settings.Settings) {
	values := map[string]bool{
		settings.KeyCulturalTips:    current.CulturalTipsEnabled,
		settings.KeyAutoCorrections: current.AutoCorrectionsEnabled,
		settings.KeyVoice:           current.VoiceEnabled,
	}
	for _, key := range settings.Keys() {
		_, _ = fmt.Fprintf(output, "%s: %t\n", key, values[key])
	}
}
