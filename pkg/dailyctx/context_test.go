package dailyctx

import (
	"fmt"
	"testing"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
)

func TestCollectFiltersTransactionsByDate(t *testing.T) {
	data := appdata.Empty()
	data.Money.Transactions = []appdata.MoneyTransaction{
		{ID: "tx1", Date: "2024-01-01", Type: appdata.TxIncome, Amount: 10, Category: "a"},
		{ID: "tx2", Date: "2024-01-02", Type: appdata.TxExpense, Amount: 20, Category: "b"},
		{ID: "tx3", Date: "2024-01-01", Type: appdata.TxExpense, Amount: 5, Category: "c"},
	}

	ctx := Collect(data, "2024-01-01")
	if len(ctx.Finances) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(ctx.Finances))
	}
	if ctx.Finances[0].ID != "tx1" || ctx.Finances[1].ID != "tx3" {
		t.Fatalf("wrong transactions selected: %v", ctx.Finances)
	}
}

func TestCollectTaskScenario(t *testing.T) {
	data := appdata.Empty()
	data.Tasks = []appdata.Task{{
		ID:       "t1",
		Title:    "Call bank",
		DueDate:  "2024-03-05",
		Priority: appdata.PriorityHigh,
		Done:     false,
	}}

	ctx := Collect(data, "2024-03-05")
	if len(ctx.Tasks) != 1 {
		t.Fatalf("expected task present on its due date, got %d", len(ctx.Tasks))
	}
	got := ctx.Tasks[0]
	if got.Completed {
		t.Fatalf("done=false must map to completed=false")
	}
	if got.Priority != "high" {
		t.Fatalf("unexpected priority: %q", got.Priority)
	}
	if got.Tags == nil {
		t.Fatalf("missing tags must become an empty collection, got nil")
	}

	next := Collect(data, "2024-03-06")
	if len(next.Tasks) != 0 {
		t.Fatalf("task must be absent on other dates, got %v", next.Tasks)
	}
}

func TestCollectTaskDueDateWithTimeSuffix(t *testing.T) {
	data := appdata.Empty()
	data.Tasks = []appdata.Task{
		{ID: "t1", Title: "with time", DueDate: "2024-03-05T09:00"},
		{ID: "t2", Title: "no due date"},
	}

	ctx := Collect(data, "2024-03-05")
	if len(ctx.Tasks) != 1 || ctx.Tasks[0].ID != "t1" {
		t.Fatalf("prefix match on due date failed: %v", ctx.Tasks)
	}
}

func TestCollectNotesCap(t *testing.T) {
	data := appdata.Empty()
	for i := 0; i < 15; i++ {
		data.Notes = append(data.Notes, appdata.Note{
			ID:        fmt.Sprintf("n%d", i),
			Title:     fmt.Sprintf("note %d", i),
			CreatedAt: "2024-05-01T10:00:00Z",
		})
	}

	ctx := Collect(data, "2024-05-01")
	if len(ctx.Notes) != 10 {
		t.Fatalf("expected notes capped at 10, got %d", len(ctx.Notes))
	}
	// First matches in source order win.
	if ctx.Notes[0].ID != "n0" || ctx.Notes[9].ID != "n9" {
		t.Fatalf("cap must keep source order: first=%s last=%s", ctx.Notes[0].ID, ctx.Notes[9].ID)
	}
}

func TestCollectNotesByCreatedAtDate(t *testing.T) {
	data := appdata.Empty()
	data.Notes = []appdata.Note{
		{ID: "today", CreatedAt: "2024-05-01T23:59:59Z"},
		{ID: "other", CreatedAt: "2024-05-02T00:00:00Z"},
		{ID: "offset", CreatedAt: "2024-05-02T01:00:00+02:00"}, // 2024-05-01 UTC
		{ID: "junk", CreatedAt: "nonsense"},
	}

	ctx := Collect(data, "2024-05-01")
	if len(ctx.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", ctx.Notes)
	}
	if ctx.Notes[0].ID != "today" || ctx.Notes[1].ID != "offset" {
		t.Fatalf("wrong notes selected: %v", ctx.Notes)
	}
}

func TestCollectFlattensWorkoutExercises(t *testing.T) {
	data := appdata.Empty()
	data.Workouts = []appdata.WorkoutSession{{
		ID:    "w1",
		Date:  "2024-02-02",
		Title: "push day",
		Exercises: []appdata.WorkoutExercise{
			{Name: "bench", Sets: []appdata.WorkoutSet{{Reps: 5, Weight: 80}, {Reps: 5, Weight: 85}, {Reps: 3, Weight: 90}}},
			{Name: "dips", Sets: nil},
		},
	}}

	ctx := Collect(data, "2024-02-02")
	if len(ctx.Workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(ctx.Workouts))
	}
	bench := ctx.Workouts[0].Exercises[0]
	if bench.Weight != 80 || bench.Reps != 5 || bench.Sets != 3 {
		t.Fatalf("flattening should use first set and count: %+v", bench)
	}
	dips := ctx.Workouts[0].Exercises[1]
	if dips.Weight != 0 || dips.Reps != 0 || dips.Sets != 0 {
		t.Fatalf("setless exercise should default to zero: %+v", dips)
	}
}

func TestCollectEmptyCollectionsNotNil(t *testing.T) {
	ctx := Collect(appdata.Empty(), "2024-01-01")
	if ctx.Tasks == nil || ctx.Finances == nil || ctx.Workouts == nil ||
		ctx.Diary == nil || ctx.Events == nil || ctx.Notes == nil {
		t.Fatalf("collections must serialize as [], not null: %+v", ctx)
	}
	if ctx.Date != "2024-01-01" {
		t.Fatalf("unexpected date: %q", ctx.Date)
	}
}

func TestCollectDefaultsToToday(t *testing.T) {
	ctx := Collect(appdata.Empty(), "")
	if ctx.Date == "" {
		t.Fatalf("empty date must resolve to today")
	}
}
