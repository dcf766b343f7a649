package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/analyze"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/chat"
)

func addChat(topLevel *cobra.Command) {
	var date string

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the assistant",
		Long: `Talk to the assistant about your day. With a message argument the
assistant answers once; without one an interactive session starts. The
assistant sees the tasks, finances, workouts, diary, events and notes
for the chosen date.`,
		Example: `
pa chat "Что у меня сегодня по плану?"
pa chat
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("assistant")
			if err != nil {
				return err
			}
			c := chat.Chat{
				Message: strings.Join(args, " "),
				Date:    date,
				Session: s,
			}
			return c.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to give the assistant as context. Defaults to today.")

	topLevel.AddCommand(cmd)
}

func addAnalyze(topLevel *cobra.Command) {
	var date string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Ask the assistant for a day review",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("assistant")
			if err != nil {
				return err
			}
			a := analyze.Day{Date: date, Session: s}
			return a.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to analyze, YYYY-MM-DD. Defaults to today.")

	topLevel.AddCommand(cmd)
}
