package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/workouts"
)

func addWorkouts(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "workouts",
		Aliases: []string{"workout", "gym"},
		Short:   "Log and review training sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addWorkoutsLog(cmd)
	addWorkoutsList(cmd)

	topLevel.AddCommand(cmd)
}

func addWorkoutsLog(topLevel *cobra.Command) {
	var (
		date      string
		notes     string
		exercises []string
	)

	cmd := &cobra.Command{
		Use:   "log <title>",
		Short: "Log a training session",
		Example: `
pa workouts log "Push day" -e "bench:5x80,5x85,3x92.5" -e "dips:10x0,10x0"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("workouts")
			if err != nil {
				return err
			}
			l := workouts.Log{
				Date:      date,
				Title:     strings.Join(args, " "),
				Notes:     notes,
				Exercises: exercises,
				Session:   s,
			}
			return l.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Session notes.")
	cmd.Flags().StringArrayVarP(&exercises, "exercise", "e", nil, "Exercise as name:RxW,RxW. Repeatable.")

	topLevel.AddCommand(cmd)
}

func addWorkoutsList(topLevel *cobra.Command) {
	var date string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List training sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("workouts")
			if err != nil {
				return err
			}
			l := workouts.List{Date: date, Session: s}
			return l.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Only sessions on this date.")

	topLevel.AddCommand(cmd)
}
