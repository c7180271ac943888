package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/polypal/internal/scenario"
)

func newScenariosCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "scenarios",
		Short: "Role-play scenarios",
	}
	command.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := scenario.NewCatalog()
			if err != nil {
				return fmt.Errorf("scenario.NewCatalog() > %w", err)
			}
			for _, s := range catalog.All() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s: %s\n", s.Icon, s.ID, s.Title, s.Description)
			}
			return nil
		},
	})
	return command
}
