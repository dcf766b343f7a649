package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/models"
)

func addModels(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Inspect and switch assistant models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("assistant")
			if err != nil {
				return err
			}
			l := models.List{Session: s}
			return l.Do(context.Background())
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show model and system status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("assistant")
			if err != nil {
				return err
			}
			st := models.Status{Session: s}
			return st.Do(context.Background())
		},
	}
	cmd.AddCommand(status)

	current := &cobra.Command{
		Use:   "current",
		Short: "Show the model currently loaded",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("assistant")
			if err != nil {
				return err
			}
			c := models.Current{Session: s}
			return c.Do(context.Background())
		},
	}
	cmd.AddCommand(current)

	sw := &cobra.Command{
		Use:   "switch <name>",
		Short: "Switch to another model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("assistant")
			if err != nil {
				return err
			}
			m := models.Switch{Name: args[0], Session: s}
			return m.Do(context.Background())
		},
	}
	cmd.AddCommand(sw)

	topLevel.AddCommand(cmd)
}
