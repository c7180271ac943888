package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/polypal/internal/app"
)

func newErrorsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "errors",
		Short: "Manage the error log of saved corrections",
	}
	command.AddCommand(
		newErrorsListCommand(),
		newErrorsRemoveCommand(),
		newErrorsClearCommand(),
		newErrorsExportCommand(),
	)
	return command
}

func newErrorsListCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "list",
		Short: "List saved corrections, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("invalid limit: %d", limit)
			}
			return withApp(cmd.Context(), false, func(application *app.App) error {
				entries := application.ErrorLog.List()
				if limit > 0 {
					entries = application.ErrorLog.Recent(limit)
				}
				output := cmd.OutOrStdout()
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(output, "No saved corrections")
					return nil
				}
				for _, entry := range entries {
					_, _ = fmt.Fprintf(output, "%s\t%s → %s\n", entry.ID, entry.OriginalText, entry.CorrectedText)
					if entry.Explanation != "" {
						_, _ = fmt.Fprintf(output, "\t%s\n", entry.Explanation)
					}
				}
				return nil
			})
		},
	}
	command.Flags().IntVar(&limit, "limit", 0, "Show only the newest entries, 0 shows all")
	return command
}

func newErrorsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a saved correction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), true, func(application *app.App) error {
				if !application.ErrorLog.Remove(args[0]) {
					return fmt.Errorf("error log entry %q not found", args[0])
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			})
		},
	}
}

func newErrorsClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved correction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), true, func(application *app.App) error {
				count := application.ErrorLog.Len()
				application.ErrorLog.Clear()
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d corrections\n", count)
				return nil
			})
		},
	}
}

func newErrorsExportCommand() *cobra.Command {
	var generatePDF bool
	command := &cobra.Command{
		Use:   "export",
		Short: "Export the error log as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), false, func(application *app.App) error {
				path, err := application.Exporter.ErrorLogFile(application.ErrorLog.List(), generatePDF)
				if err != nil {
					return fmt.Errorf("exporter.ErrorLogFile() > %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
				return nil
			})
		},
	}
	command.Flags().BoolVar(&generatePDF, "pdf", false, "Convert the markdown output to PDF")
	return command
}
