package printers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
)

func (pp *PrettyPrint) Notes(notes ...appdata.Note) {
	if len(notes) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, n := range notes {
		folder := ""
		if n.Folder != "" {
			folder = color.New(color.Faint).Sprint(n.Folder + "/")
		}
		tags := ""
		if len(n.Tags) > 0 {
			tags = color.New(color.Faint).Sprint("#" + strings.Join(n.Tags, " #"))
		}
		row := []interface{}{folder + n.Title, tags}
		if pp.ShowID {
			row = append(row, color.New(color.FgHiYellow, color.Faint).Sprint(n.ID))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Note renders a single note's markdown for the terminal. Rendering
// failures fall back to the raw content, never an error.
func (pp *PrettyPrint) Note(n appdata.Note) {
	pp.Title(n.Title)
	out, err := glamour.Render(n.Content, "auto")
	if err != nil {
		fmt.Println(n.Content)
		return
	}
	fmt.Print(out)
	if len(n.Tags) > 0 {
		_, _ = color.New(color.Faint).Printf("#%s\n", strings.Join(n.Tags, " #"))
	}
}

// FolderTree renders the folder hierarchy with notes nested under their
// folder paths.
func (pp *PrettyPrint) FolderTree(folders []appdata.NoteFolder, notes []appdata.Note) {
	byPath := make(map[string][]appdata.Note)
	for _, n := range notes {
		byPath[n.Folder] = append(byPath[n.Folder], n)
	}

	sorted := append([]appdata.NoteFolder(nil), folders...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	f := color.New(color.Bold)
	for _, folder := range sorted {
		indent := strings.Repeat("  ", folder.Level)
		_, _ = f.Printf("%s%s/\n", indent, folder.Name)
		for _, n := range byPath[folder.Path] {
			fmt.Printf("%s  %s\n", indent, n.Title)
		}
	}
	if roots := byPath[""]; len(roots) > 0 {
		for _, n := range roots {
			fmt.Println(n.Title)
		}
	}
}
