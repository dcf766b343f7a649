package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pa",
		Short: "Personal assistant on the command line: tasks, money, workouts, calendar, diary and notes, with an optional AI chat.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if s, err := session.Open(); err == nil {
				fmt.Printf("last used: %s\n\n", s.LastTab())
			}
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTasks(topLevel)
	addMoney(topLevel)
	addWorkouts(topLevel)
	addCalendar(topLevel)
	addDiary(topLevel)
	addNotes(topLevel)
	addChat(topLevel)
	addAnalyze(topLevel)
	addModels(topLevel)
	addBackup(topLevel)
	addVersion(topLevel)
}

// open starts the session and best-effort records which feature was used.
func open(tab string) (*session.Session, error) {
	s, err := session.Open()
	if err != nil {
		return nil, err
	}
	if tab != "" {
		s.RememberTab(tab)
	}
	return s, nil
}
