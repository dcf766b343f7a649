package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/tasks"
)

func addTasks(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Track tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskList(cmd)
	addTaskDone(cmd)
	addTaskRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	var (
		notes    string
		priority string
		tags     []string
		due      string
		title    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
pa tasks add call the bank --due 2024-03-05 --priority high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("tasks")
			if err != nil {
				return err
			}
			a := tasks.Add{
				Title:    title,
				Notes:    notes,
				Priority: priority,
				Tags:     tags,
				DueDate:  due,
				Session:  s,
			}
			return a.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-form notes.")
	cmd.Flags().StringVarP(&priority, "priority", "p", "med", "Priority: low, med or high.")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags, repeatable.")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date, YYYY-MM-DD.")

	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command) {
	var (
		date     string
		showDone bool
		showID   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("tasks")
			if err != nil {
				return err
			}
			l := tasks.List{
				Date:     date,
				ShowDone: showDone,
				ShowID:   showID,
				Session:  s,
			}
			return l.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "due", "d", "", "Only tasks due on this date.")
	cmd.Flags().BoolVarP(&showDone, "all", "a", false, "Include completed tasks.")
	cmd.Flags().BoolVar(&showID, "id", false, "Show task ids.")

	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("tasks")
			if err != nil {
				return err
			}
			d := tasks.Done{ID: args[0], Session: s}
			return d.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addTaskRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("tasks")
			if err != nil {
				return err
			}
			r := tasks.Remove{ID: args[0], Session: s}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
