package jsonio

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
)

func sampleData() appdata.AppData {
	data := appdata.Empty()
	appdata.Migrate(&data)
	data.Tasks = append(data.Tasks, appdata.Task{
		ID: "t1", Title: "round trip", Done: true, Priority: appdata.PriorityLow,
		Tags: []string{"x"}, DueDate: "2024-03-05",
		CreatedAt: "2024-03-01T00:00:00Z", UpdatedAt: "2024-03-02T00:00:00Z",
	})
	budget := 1500.0
	data.Money.MonthlyBudget = &budget
	return data
}

func TestRoundTrip(t *testing.T) {
	in := sampleData()

	var buf bytes.Buffer
	if err := Export(&buf, in); err != nil {
		t.Fatalf("export: %v", err)
	}

	out, err := ImportBackup(&buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip changed the aggregate:\nin:  %+v\nout: %+v", in, out)
	}
}

func TestExportIsIndented(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, appdata.Empty()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"version\"") {
		t.Fatalf("expected pretty-printed JSON, got: %.80s", buf.String())
	}
}

func TestImportRejectsMalformed(t *testing.T) {
	_, err := ImportBackup(strings.NewReader(`{broken`))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestImportRejectsWrongVersion(t *testing.T) {
	_, err := ImportBackup(strings.NewReader(`{"version": 2, "tasks": []}`))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Fatalf("version mismatch must be distinct from malformed: %v", err)
	}
}

func TestFilenames(t *testing.T) {
	if got := BackupFilename("2024-03-05"); got != "personal-assistant-backup-2024-03-05.json" {
		t.Fatalf("unexpected backup filename: %q", got)
	}
	if got := DayExportFilename("2024-03-05"); got != "day-export-2024-03-05.json" {
		t.Fatalf("unexpected day export filename: %q", got)
	}
}

func TestNewDayExport(t *testing.T) {
	data := sampleData()
	data.Money.Transactions = []appdata.MoneyTransaction{
		{ID: "tx1", Date: "2024-03-05", Type: appdata.TxExpense, Amount: 5, Category: "a"},
		{ID: "tx2", Date: "2024-03-06", Type: appdata.TxIncome, Amount: 9, Category: "b"},
	}
	data.Workouts = []appdata.WorkoutSession{{ID: "w1", Date: "2024-03-05", Title: "legs"}}
	data.Events = []appdata.CalendarEvent{{ID: "e1", Date: "2024-03-07", Title: "later"}}

	day := NewDayExport(data, "2024-03-05")
	if day.Date != "2024-03-05" {
		t.Fatalf("unexpected date: %q", day.Date)
	}
	if day.ExportedAt == "" {
		t.Fatalf("exportedAt must be set")
	}
	want := DaySummary{TasksCount: 1, TransactionsCount: 1, WorkoutsCount: 1, EventsCount: 0}
	if day.Summary != want {
		t.Fatalf("unexpected summary: %+v", day.Summary)
	}
	if day.Tasks[0].ID != "t1" || day.Transactions[0].ID != "tx1" {
		t.Fatalf("wrong records selected: %+v", day)
	}
}
