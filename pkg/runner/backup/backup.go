package backup

import (
	"context"
	"fmt"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/jsonio"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/printers"
	"github.com/lastochkinroman/PersonalAssistantLite/pkg/session"
)

// Export writes the whole aggregate to a backup file.
type Export struct {
	Out string // defaults to personal-assistant-backup-<today>.json

	Session *session.Session
}

func (e *Export) Do(ctx context.Context) error {
	out := e.Out
	if out == "" {
		out = jsonio.BackupFilename(ids.Today())
	}
	if err := jsonio.ExportFile(out, e.Session.Data()); err != nil {
		return fmt.Errorf("exporting backup: %w", err)
	}
	pp := printers.PrettyPrint{}
	pp.Status(fmt.Sprintf("exported to %s", out))
	return nil
}

// Import replaces the aggregate with a validated backup. A malformed or
// wrong-version file leaves the current data untouched.
type Import struct {
	In string

	Session *session.Session
}

func (i *Import) Do(ctx context.Context) error {
	if i.In == "" {
		return fmt.Errorf("backup file required")
	}
	data, err := jsonio.ImportBackupFile(i.In)
	if err != nil {
		return err
	}
	i.Session.Save(data)
	pp := printers.PrettyPrint{}
	pp.Status(fmt.Sprintf("imported %s", i.In))
	return nil
}

// ExportDay writes a single day's slice with summary counts.
type ExportDay struct {
	Date string // defaults to today
	Out  string // defaults to day-export-<date>.json

	Session *session.Session
}

func (e *ExportDay) Do(ctx context.Context) error {
	date := e.Date
	if date == "" {
		date = ids.Today()
	}
	out := e.Out
	if out == "" {
		out = jsonio.DayExportFilename(date)
	}
	day := jsonio.NewDayExport(e.Session.Data(), date)
	if err := jsonio.ExportFile(out, day); err != nil {
		return fmt.Errorf("exporting day: %w", err)
	}
	pp := printers.PrettyPrint{}
	pp.Status(fmt.Sprintf("exported %s to %s (%d tasks, %d transactions, %d workouts, %d events)",
		date, out, day.Summary.TasksCount, day.Summary.TransactionsCount,
		day.Summary.WorkoutsCount, day.Summary.EventsCount))
	return nil
}
