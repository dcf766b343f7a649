package appdata

import "github.com/lastochkinroman/PersonalAssistantLite/pkg/ids"

// Migrate backfills top-level fields a stored aggregate may predate and
// reports whether anything changed. It is additive only: pre-existing user
// data is never dropped or rewritten, and running it on already migrated
// data is a no-op. Callers persist the aggregate when it returns true.
func Migrate(data *AppData) bool {
	changed := false
	now := ids.NowISO()

	if len(data.Money.Accounts) == 0 {
		data.Money.Accounts = []Account{defaultAccount(now)}
		changed = true
	}
	if data.Diary == nil {
		data.Diary = []DiaryEntry{}
		changed = true
	}
	if data.Events == nil {
		data.Events = []CalendarEvent{}
		changed = true
	}
	if data.Notes == nil {
		data.Notes = []Note{}
		changed = true
	}
	if data.NoteFolders == nil {
		data.NoteFolders = []NoteFolder{}
		changed = true
	}
	if len(data.Notes) == 0 {
		data.Notes = []Note{welcomeNote(now)}
		changed = true
	}

	return changed
}
