package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/polypal/internal/bootstrap"
	"github.com/at-ishikawa/polypal/internal/cli"
	"github.com/at-ishikawa/polypal/internal/conversation"
)

func newChatCommand() *cobra.Command {
	mode := ModeFlag(conversation.ModeGeneral)
	var scenarioID string

	command := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the tutor in French",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application, err := openApp(ctx)
			if err != nil {
				return err
			}

			lifecycle := bootstrap.New()
			lifecycle.AddShutdownHook(func(context.Context) error {
				return application.Close()
			})
			lifecycle.AddShutdownHook(application.Save)

			chatCLI := cli.NewChatCLI(
				application.Conversation,
				application.Translator,
				application.ErrorLog,
				application.Settings,
				application.Scenarios,
				cli.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
			)
			return lifecycle.Run(ctx, func(ctx context.Context) error {
				var greeting string
				if scenarioID != "" {
					entry, err := application.Conversation.StartScenario(scenarioID)
					if err != nil {
						return fmt.Errorf("conversation.StartScenario(%s) > %w", scenarioID, err)
					}
					greeting = entry.Text
				} else if err := application.Conversation.SwitchMode(conversation.Mode(mode), ""); err != nil {
					return fmt.Errorf("conversation.SwitchMode(%s) > %w", mode, err)
				}

				chatCLI.Welcome()
				if greeting != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PolyPal: %s\n\n", greeting)
				}
				slog.Default().Debug("Chat started",
					"mode", application.Conversation.Mode(),
					"scenario", application.Conversation.ScenarioID())
				return chatCLI.Run(ctx, chatCLI)
			})
		},
	}

	flags := command.Flags()
	flags.Var(&mode, "mode", "Conversation mode. Options: general, scenarios, teacher")
	flags.StringVar(&scenarioID, "scenario", "", "Start a role-play scenario by id, see polypal scenarios list")
	return command
}
