package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/diary"
)

func addDiary(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Keep a daily diary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDiaryWrite(cmd)
	addDiaryList(cmd)

	topLevel.AddCommand(cmd)
}

func addDiaryWrite(topLevel *cobra.Command) {
	var (
		date string
		mood string
		tags []string
	)

	cmd := &cobra.Command{
		Use:   "write <content>",
		Short: "Write a diary entry",
		Example: `
pa diary write "Отличный день, закончил проект" --mood great
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("diary")
			if err != nil {
				return err
			}
			w := diary.Write{
				Date:    date,
				Content: strings.Join(args, " "),
				Mood:    mood,
				Tags:    tags,
				Session: s,
			}
			return w.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood: great, good, neutral, bad or awful.")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags for the entry.")

	topLevel.AddCommand(cmd)
}

func addDiaryList(topLevel *cobra.Command) {
	var (
		date  string
		month string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List diary entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("diary")
			if err != nil {
				return err
			}
			l := diary.List{Date: date, Month: month, Session: s}
			return l.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Only entries on this date.")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Only entries in this month, YYYY-MM.")

	topLevel.AddCommand(cmd)
}
