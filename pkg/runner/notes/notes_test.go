package notes

import (
	"testing"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
)

func TestNewFolderRoot(t *testing.T) {
	folder := NewFolder(nil, "work", "")
	if folder.Level != 0 {
		t.Fatalf("root folder level must be 0, got %d", folder.Level)
	}
	if folder.Path != "work" {
		t.Fatalf("root folder path must be its name, got %q", folder.Path)
	}
	if folder.ParentID != "" {
		t.Fatalf("root folder must not reference a parent")
	}
}

func TestNewFolderNested(t *testing.T) {
	parent := NewFolder(nil, "work", "")
	child := NewFolder([]appdata.NoteFolder{parent}, "projects", "work")

	if child.ParentID != parent.ID {
		t.Fatalf("child must reference parent id")
	}
	if child.Level != parent.Level+1 {
		t.Fatalf("child level must be parent+1, got %d", child.Level)
	}
	if child.Path != "work/projects" {
		t.Fatalf("child path must join parent path, got %q", child.Path)
	}
}

func TestNewFolderMissingParentStaysRootShaped(t *testing.T) {
	folder := NewFolder(nil, "orphan", "missing")
	if folder.ParentID != "" || folder.Level != 0 || folder.Path != "orphan" {
		t.Fatalf("missing parent must leave a root-shaped folder: %+v", folder)
	}
}
