package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal", "events"},
		Short:   "Manage calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCalendarAdd(cmd)
	addCalendarList(cmd)
	addCalendarRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addCalendarAdd(topLevel *cobra.Command) {
	var (
		date        string
		at          string
		duration    int
		description string
		location    string
		color       string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event",
		Example: `
pa calendar add "Dentist" --date 2026-09-02 --at 14:30 --duration 45
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("calendar")
			if err != nil {
				return err
			}
			a := calendar.Add{
				Title:       strings.Join(args, " "),
				Date:        date,
				Time:        at,
				Duration:    duration,
				Description: description,
				Location:    location,
				Color:       color,
				Tags:        tags,
				Session:     s,
			}
			return a.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVar(&at, "at", "", "Start time, HH:MM.")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes.")
	cmd.Flags().StringVar(&description, "description", "", "Event description.")
	cmd.Flags().StringVarP(&location, "location", "l", "", "Event location.")
	cmd.Flags().StringVar(&color, "color", "", "Display color.")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags for the event.")

	topLevel.AddCommand(cmd)
}

func addCalendarList(topLevel *cobra.Command) {
	var (
		date   string
		month  string
		showID bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("calendar")
			if err != nil {
				return err
			}
			l := calendar.List{Date: date, Month: month, ShowID: showID, Session: s}
			return l.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Only events on this date.")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Only events in this month, YYYY-MM.")
	cmd.Flags().BoolVar(&showID, "id", false, "Show event ids.")

	topLevel.AddCommand(cmd)
}

func addCalendarRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove an event",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("calendar")
			if err != nil {
				return err
			}
			r := calendar.Remove{ID: args[0], Session: s}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
