package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/notes"
)

func addNotes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Markdown notes organized in folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNotesAdd(cmd)
	addNotesList(cmd)
	addNotesView(cmd)
	addNotesRemove(cmd)
	addNotesFolders(cmd)

	topLevel.AddCommand(cmd)
}

func addNotesAdd(topLevel *cobra.Command) {
	var (
		content string
		folder  string
		tags    []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a note",
		Example: `
pa notes add "Идеи для отпуска" --folder personal --content "## Куда поехать"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("notes")
			if err != nil {
				return err
			}
			a := notes.Add{
				Title:   strings.Join(args, " "),
				Content: content,
				Folder:  folder,
				Tags:    tags,
				Session: s,
			}
			return a.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Markdown body of the note.")
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Folder path. Must already exist.")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags for the note.")

	topLevel.AddCommand(cmd)
}

func addNotesList(topLevel *cobra.Command) {
	var (
		folder string
		showID bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("notes")
			if err != nil {
				return err
			}
			l := notes.List{Folder: folder, ShowID: showID, Session: s}
			return l.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Only notes in this folder path.")
	cmd.Flags().BoolVar(&showID, "id", false, "Show note ids.")

	topLevel.AddCommand(cmd)
}

func addNotesView(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "view <id or title>",
		Aliases: []string{"show", "cat"},
		Short:   "Render a note",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("notes")
			if err != nil {
				return err
			}
			v := notes.View{Query: strings.Join(args, " "), Session: s}
			return v.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addNotesRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("notes")
			if err != nil {
				return err
			}
			r := notes.Remove{ID: args[0], Session: s}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addNotesFolders(topLevel *cobra.Command) {
	var parent string

	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"tree"},
		Short:   "Show the folder tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("notes")
			if err != nil {
				return err
			}
			t := notes.Tree{Session: s}
			return t.Do(context.Background())
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("notes")
			if err != nil {
				return err
			}
			f := notes.FolderAdd{Name: args[0], Parent: parent, Session: s}
			return f.Do(context.Background())
		},
	}
	add.Flags().StringVarP(&parent, "parent", "p", "", "Parent folder path.")
	cmd.AddCommand(add)

	topLevel.AddCommand(cmd)
}
