package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/backup"
)

func addBackup(topLevel *cobra.Command) {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data to a JSON backup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("backup")
			if err != nil {
				return err
			}
			e := backup.Export{Out: out, Session: s}
			return e.Do(context.Background())
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file. Defaults to personal-assistant-backup-<today>.json.")
	topLevel.AddCommand(cmd)

	imp := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("backup")
			if err != nil {
				return err
			}
			i := backup.Import{In: args[0], Session: s}
			return i.Do(context.Background())
		},
	}
	topLevel.AddCommand(imp)

	var (
		date   string
		dayOut string
	)
	day := &cobra.Command{
		Use:   "export-day",
		Short: "Export a single day to JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("backup")
			if err != nil {
				return err
			}
			e := backup.ExportDay{Date: date, Out: dayOut, Session: s}
			return e.Do(context.Background())
		},
	}
	day.Flags().StringVarP(&date, "date", "d", "", "Day to export, YYYY-MM-DD. Defaults to today.")
	day.Flags().StringVarP(&dayOut, "out", "o", "", "Output file. Defaults to day-export-<date>.json.")
	topLevel.AddCommand(day)
}
