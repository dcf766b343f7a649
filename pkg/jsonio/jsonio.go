// Package jsonio serializes the aggregate (or a day slice of it) to backup
// files and parses uploads back, gating imports on the version tag.
package jsonio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/appdata"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
)

var (
	// ErrMalformed marks a file that is not parseable JSON.
	ErrMalformed = errors.New("malformed backup file")
	// ErrUnsupportedVersion marks a parseable backup of the wrong version.
	ErrUnsupportedVersion = errors.New("unsupported backup format")
)

// Export writes v as indented JSON.
func Export(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ExportFile writes v as indented JSON to path.
func ExportFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Export(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ImportBackup parses a whole-aggregate backup, rejecting unparseable files
// with ErrMalformed and wrong-version files with ErrUnsupportedVersion.
// Nothing is mutated on failure; the caller swaps in the returned aggregate
// only on success.
func ImportBackup(r io.Reader) (appdata.AppData, error) {
	var zero appdata.AppData

	raw, err := io.ReadAll(r)
	if err != nil {
		return zero, fmt.Errorf("reading backup: %w", err)
	}

	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if probe.Version != appdata.Version {
		return zero, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, probe.Version)
	}

	var data appdata.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return data, nil
}

// ImportBackupFile reads and parses the backup at path.
func ImportBackupFile(path string) (appdata.AppData, error) {
	f, err := os.Open(path)
	if err != nil {
		return appdata.AppData{}, err
	}
	defer f.Close()
	return ImportBackup(f)
}

// BackupFilename names a whole-aggregate export for date.
func BackupFilename(date string) string {
	return fmt.Sprintf("personal-assistant-backup-%s.json", date)
}

// DayExportFilename names a single-day export for date.
func DayExportFilename(date string) string {
	return fmt.Sprintf("day-export-%s.json", date)
}

type DaySummary struct {
	TasksCount        int `json:"tasksCount"`
	TransactionsCount int `json:"transactionsCount"`
	WorkoutsCount     int `json:"workoutsCount"`
	EventsCount       int `json:"eventsCount"`
}

// DayExport is the single-day slice shape offered for download.
type DayExport struct {
	Date         string                     `json:"date"`
	ExportedAt   string                     `json:"exportedAt"`
	Tasks        []appdata.Task             `json:"tasks"`
	Transactions []appdata.MoneyTransaction `json:"transactions"`
	Workouts     []appdata.WorkoutSession   `json:"workouts"`
	Events       []appdata.CalendarEvent    `json:"events"`
	Summary      DaySummary                 `json:"summary"`
}

// NewDayExport slices data down to one date: tasks by due-date prefix,
// everything else by exact date match.
func NewDayExport(data appdata.AppData, date string) DayExport {
	out := DayExport{
		Date:         date,
		ExportedAt:   ids.NowISO(),
		Tasks:        []appdata.Task{},
		Transactions: []appdata.MoneyTransaction{},
		Workouts:     []appdata.WorkoutSession{},
		Events:       []appdata.CalendarEvent{},
	}
	for _, t := range data.Tasks {
		if t.DueDate != "" && strings.HasPrefix(t.DueDate, date) {
			out.Tasks = append(out.Tasks, t)
		}
	}
	for _, tx := range data.Money.Transactions {
		if tx.Date == date {
			out.Transactions = append(out.Transactions, tx)
		}
	}
	for _, w := range data.Workouts {
		if w.Date == date {
			out.Workouts = append(out.Workouts, w)
		}
	}
	for _, e := range data.Events {
		if e.Date == date {
			out.Events = append(out.Events, e)
		}
	}
	out.Summary = DaySummary{
		TasksCount:        len(out.Tasks),
		TransactionsCount: len(out.Transactions),
		WorkoutsCount:     len(out.Workouts),
		EventsCount:       len(out.Events),
	}
	return out
}
