package tasks

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
	Title    string
	Notes    string
	Priority string
	Tags     []string
	DueDate  string

	Session *session.Session
}

func (a *Add) Do(ctx context.Context) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("task title required")
	}

	priority := appdata.Priority(a.Priority)
	switch priority {
	case appdata.PriorityLow, appdata.PriorityMed, appdata.PriorityHigh:
	case "":
		priority = appdata.PriorityMed
	default:
		return fmt.Errorf("unknown priority %q, want low, med or high", a.Priority)
	}

	now := ids.NowISO()
	task := appdata.Task{
		ID:        ids.New("task"),
		Title:     a.Title,
		Notes:     a.Notes,
		Done:      false,
		Priority:  priority,
		Tags:      tags(a.Tags),
		DueDate:   a.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data := a.Session.Data()
	data.Tasks = append(data.Tasks, task)
	a.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Title("tasks")
	pp.Tasks(task)
	return nil
}

type List struct {
	Date     string // filter by due date when set
	ShowDone bool
	ShowID   bool

	Session *session.Session
}

func (l *List) Do(ctx context.Context) error {
	data := l.Session.Data()

	matched := make([]appdata.Task, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		if l.Date != "" && !strings.HasPrefix(t.DueDate, l.Date) {
			continue
		}
		if t.Done && !l.ShowDone {
			continue
		}
		matched = append(matched, t)
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount("tasks", len(matched))
	pp.Tasks(matched...)
	return nil
}

type Done struct {
	ID string

	Session *session.Session
}

func (d *Done) Do(ctx context.Context) error {
	data := d.Session.Data()
	i, err := find(data.Tasks, d.ID)
	if err != nil {
		return err
	}

	data.Tasks[i].Done = true
	data.Tasks[i].UpdatedAt = ids.NowISO()
	d.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Tasks(data.Tasks[i])
	return nil
}

type Remove struct {
	ID string

	Session *session.Session
}

func (r *Remove) Do(ctx context.Context) error {
	data := r.Session.Data()
	i, err := find(data.Tasks, r.ID)
	if err != nil {
		return err
	}

	removed := data.Tasks[i]
	data.Tasks = append(data.Tasks[:i], data.Tasks[i+1:]...)
	r.Session.Save(data)

	pp := printers.PrettyPrint{}
	pp.Status(fmt.Sprintf("removed task %q", removed.Title))
	return nil
}

// find locates a task by id or unique id prefix.
func find(tasks []appdata.Task, query string) (int, error) {
	if query == "" {
		return 0, fmt.Errorf("task id required")
	}
	match := -1
	for i, t := range tasks {
		if t.ID == query {
			return i, nil
		}
		if strings.HasPrefix(t.ID, query) {
			if match >= 0 {
				return 0, fmt.Errorf("task id %q is ambiguous", query)
			}
			match = i
		}
	}
	if match < 0 {
		return 0, fmt.Errorf("no task with id %q", query)
	}
	return match, nil
}

func tags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
