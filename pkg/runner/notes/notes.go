package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

type Add struct {
	Title   string
	Content string
	Folder  string // folder path, must exist unless empty
	Tags    []string

	Session *session.Session
}

func (a *Add) Do(ctx context.Context) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("note title required")
	}

	data := a.Session.Data()
	if a.Folder != "" && findFolderByPath(data.NoteFolders, a.Folder) == nil {
		return fmt.Errorf("no folder %q, create it first", a.Folder)
	}

	now := ids.NowISO()
	note := appdata.Note{
		ID:        ids.New("note"),
		Title:     a.Title,
		Content:   a.Content,
		Folder:    a.Folder,
		Tags:      a.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	data.Notes = append(data.Notes, note)
	a.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Notes(note)
	return nil
}

type List struct {
	Folder string
	ShowID bool

	Session *session.Session
}

func (l *List) Do(ctx context.Context) error {
	data := l.Session.Data()

	matched := make([]appdata.Note, 0, len(data.Notes))
	for _, n := range data.Notes {
		if l.Folder != "" && n.Folder != l.Folder {
			continue
		}
		matched = append(matched, n)
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount("notes", len(matched))
	pp.Notes(matched...)
	return nil
}

type View struct {
	// Query matches a note id, id prefix or exact title.
	Query string

	Session *session.Session
}

func (v *View) Do(ctx context.Context) error {
	data := v.Session.Data()
	for _, n := range data.Notes {
		if n.ID == v.Query || n.Title == v.Query || strings.HasPrefix(n.ID, v.Query) {
			pp := printers.PrettyPrint{}
			pp.Note(n)
			return nil
		}
	}
	return fmt.Errorf("no note matching %q", v.Query)
}

type Remove struct {
	ID string

	Session *session.Session
}

func (r *Remove) Do(ctx context.Context) error {
	data := r.Session.Data()
	for i, n := range data.Notes {
		if n.ID == r.ID || strings.HasPrefix(n.ID, r.ID) {
			data.Notes = append(data.Notes[:i], data.Notes[i+1:]...)
			r.Session.Save(data)
			pp := printers.PrettyPrint{}
			pp.Status(fmt.Sprintf("removed note %q", n.Title))
			return nil
		}
	}
	return fmt.Errorf("no note with id %q", r.ID)
}

type FolderAdd struct {
	Name   string
	Parent string // parent folder path, optional

	Session *session.Session
}

func (f *FolderAdd) Do(ctx context.Context) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return fmt.Errorf("folder name required")
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("folder name must not contain %q", "/")
	}

	data := f.Session.Data()

	// A folder can only reference a parent that already exists, which is
	// what keeps level/path/parentId chains consistent and cycle-free.
	folder := NewFolder(data.NoteFolders, name, f.Parent)
	if f.Parent != "" && folder.ParentID == "" {
		return fmt.Errorf("no folder %q", f.Parent)
	}
	if findFolderByPath(data.NoteFolders, folder.Path) != nil {
		return fmt.Errorf("folder %q already exists", folder.Path)
	}

	data.NoteFolders = append(data.NoteFolders, folder)
	f.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.FolderTree(data.NoteFolders, data.Notes)
	return nil
}

type Tree struct {
	Session *session.Session
}

func (t *Tree) Do(ctx context.Context) error {
	data := t.Session.Data()
	pp := printers.PrettyPrint{}
	pp.Title("notes")
	pp.FolderTree(data.NoteFolders, data.Notes)
	return nil
}

// NewFolder derives a folder record from its parent: level is parent's
// level + 1 (0 for roots), path is the parent path joined with the name.
func NewFolder(folders []appdata.NoteFolder, name, parentPath string) appdata.NoteFolder {
	now := ids.NowISO()
	folder := appdata.NoteFolder{
		ID:        ids.New("folder"),
		Name:      name,
		Path:      name,
		Level:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if parentPath != "" {
		if parent := findFolderByPath(folders, parentPath); parent != nil {
			folder.ParentID = parent.ID
			folder.Level = parent.Level + 1
			folder.Path = parent.Path + "/" + name
		}
	}
	return folder
}

func findFolderByPath(folders []appdata.NoteFolder, path string) *appdata.NoteFolder {
	for i := range folders {
		if folders[i].Path == path {
			return &folders[i]
		}
	}
	return nil
}
