// Package dailyctx projects the aggregate into the shape the assistant
// service expects: every collection filtered to one date, with the field
// renames the wire contract requires (done→completed, money→finances)
// applied at this boundary only.
package dailyctx

import (
	"strings"
	"time"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
)

// maxNotes caps the notes slice; the first matches win in source order.
const maxNotes = 10

type Context struct {
	Date     string        `json:"date"`
	Tasks    []Task        `json:"tasks"`
	Finances []Transaction `json:"finances"`
	Workouts []Workout     `json:"workouts"`
	Diary    []DiaryEntry  `json:"diary"`
	Events   []Event       `json:"events"`
	Notes    []Note        `json:"notes"`
}

type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Notes     string   `json:"notes,omitempty"`
	Completed bool     `json:"completed"`
	Priority  string   `json:"priority"`
	Tags      []string `json:"tags"`
	DueDate   string   `json:"dueDate,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type Transaction struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	AccountID string  `json:"accountId,omitempty"`
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// Exercise flattens a session exercise for the wire: the first set's load
// plus the set count.
type Exercise struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Sets   int     `json:"sets"`
}

type Workout struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

type DiaryEntry struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Color       string   `json:"color,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Folder    string   `json:"folder,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// Collect builds the daily context for date (today when empty). Pure and
// side-effect free; callers supply normalized YYYY-MM-DD dates, comparisons
// are plain string matches, never calendar-aware.
func Collect(data appdata.AppData, date string) Context {
	target := date
	if target == "" {
		target = ids.Today()
	}

	ctx := Context{
		Date:     target,
		Tasks:    []Task{},
		Finances: []Transaction{},
		Workouts: []Workout{},
		Diary:    []DiaryEntry{},
		Events:   []Event{},
		Notes:    []Note{},
	}

	for _, t := range data.Tasks {
		// Prefix match so a due date carrying a time suffix still hits its day.
		if t.DueDate == "" || !strings.HasPrefix(t.DueDate, target) {
			continue
		}
		ctx.Tasks = append(ctx.Tasks, Task{
			ID:        t.ID,
			Title:     t.Title,
			Notes:     t.Notes,
			Completed: t.Done,
			Priority:  string(t.Priority),
			Tags:      tags(t.Tags),
			DueDate:   t.DueDate,
			CreatedAt: t.CreatedAt,
			UpdatedAt: t.UpdatedAt,
		})
	}

	for _, tx := range data.Money.Transactions {
		if tx.Date != target {
			continue
		}
		ctx.Finances = append(ctx.Finances, Transaction{
			ID:        tx.ID,
			Date:      tx.Date,
			Type:      string(tx.Type),
			Amount:    tx.Amount,
			Category:  tx.Category,
			AccountID: tx.AccountID,
			Note:      tx.Note,
			CreatedAt: tx.CreatedAt,
			UpdatedAt: tx.UpdatedAt,
		})
	}

	for _, w := range data.Workouts {
		if w.Date != target {
			continue
		}
		exercises := make([]Exercise, 0, len(w.Exercises))
		for _, ex := range w.Exercises {
			flat := Exercise{Name: ex.Name, Sets: len(ex.Sets)}
			if len(ex.Sets) > 0 {
				flat.Weight = ex.Sets[0].Weight
				flat.Reps = ex.Sets[0].Reps
			}
			exercises = append(exercises, flat)
		}
		ctx.Workouts = append(ctx.Workouts, Workout{
			ID:        w.ID,
			Date:      w.Date,
			Title:     w.Title,
			Notes:     w.Notes,
			Exercises: exercises,
			CreatedAt: w.CreatedAt,
			UpdatedAt: w.UpdatedAt,
		})
	}

	for _, d := range data.Diary {
		if d.Date != target {
			continue
		}
		ctx.Diary = append(ctx.Diary, DiaryEntry{
			ID:        d.ID,
			Date:      d.Date,
			Content:   d.Content,
			Mood:      string(d.Mood),
			Tags:      tags(d.Tags),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}

	for _, e := range data.Events {
		if e.Date != target {
			continue
		}
		ctx.Events = append(ctx.Events, Event{
			ID:          e.ID,
			Title:       e.Title,
			Date:        e.Date,
			Time:        e.Time,
			Duration:    e.Duration,
			Description: e.Description,
			Location:    e.Location,
			Color:       e.Color,
			Tags:        tags(e.Tags),
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		})
	}

	for _, n := range data.Notes {
		if len(ctx.Notes) >= maxNotes {
			break
		}
		if createdOn(n.CreatedAt) != target {
			continue
		}
		ctx.Notes = append(ctx.Notes, Note{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			Folder:    n.Folder,
			Tags:      tags(n.Tags),
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}

	return ctx
}

// createdOn truncates a record timestamp to its UTC date. Malformed
// timestamps fall back to their leading characters; nothing here errors.
func createdOn(createdAt string) string {
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return ""
}

func tags(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
