package appdata

import (
	"encoding/json"
	"reflect"
	"testing"
)

// legacyBlob predates the diary, events, notes and noteFolders collections
// and the accounts list.
const legacyBlob = `{
	"version": 1,
	"settings": {"locale": "ru-RU", "currency": "RUB"},
	"tasks": [{"id": "t1", "title": "keep me", "done": false, "priority": "med", "tags": [], "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z"}],
	"money": {"transactions": [], "categories": ["Еда"]},
	"workouts": []
}`

func TestMigrateBackfillsMissingCollections(t *testing.T) {
	var data AppData
	if err := json.Unmarshal([]byte(legacyBlob), &data); err != nil {
		t.Fatalf("unmarshal legacy blob: %v", err)
	}

	if !Migrate(&data) {
		t.Fatalf("expected migration to fire on legacy data")
	}

	if len(data.Money.Accounts) < 1 {
		t.Fatalf("expected at least one account after migration")
	}
	if data.Money.Accounts[0].ID != DefaultAccountID {
		t.Fatalf("expected default account, got %q", data.Money.Accounts[0].ID)
	}
	if data.Diary == nil || data.Events == nil || data.NoteFolders == nil {
		t.Fatalf("expected empty collections, got diary=%v events=%v folders=%v",
			data.Diary, data.Events, data.NoteFolders)
	}
	if len(data.Notes) != 1 || data.Notes[0].ID != WelcomeNoteID {
		t.Fatalf("expected seeded welcome note, got %v", data.Notes)
	}
}

func TestMigratePreservesUserData(t *testing.T) {
	var data AppData
	if err := json.Unmarshal([]byte(legacyBlob), &data); err != nil {
		t.Fatalf("unmarshal legacy blob: %v", err)
	}
	Migrate(&data)

	if len(data.Tasks) != 1 || data.Tasks[0].Title != "keep me" {
		t.Fatalf("tasks mutated by migration: %v", data.Tasks)
	}
	if !reflect.DeepEqual(data.Money.Categories, []string{"Еда"}) {
		t.Fatalf("categories mutated by migration: %v", data.Money.Categories)
	}
	if data.Settings.Currency != "RUB" {
		t.Fatalf("settings mutated by migration: %v", data.Settings)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	var data AppData
	if err := json.Unmarshal([]byte(legacyBlob), &data); err != nil {
		t.Fatalf("unmarshal legacy blob: %v", err)
	}
	Migrate(&data)

	before, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if Migrate(&data) {
		t.Fatalf("second migration should be a no-op")
	}
	after, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("second migration changed data:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestMigrateEmptyAggregateIsNoOp(t *testing.T) {
	data := Empty()
	// Empty() already carries an account; only the welcome note is missing.
	if !Migrate(&data) {
		t.Fatalf("expected welcome note seeding on fresh aggregate")
	}
	if Migrate(&data) {
		t.Fatalf("migrated aggregate should not migrate again")
	}
}

func TestMigrateKeepsExistingNotes(t *testing.T) {
	data := Empty()
	data.Notes = []Note{{ID: "n1", Title: "mine", Tags: []string{}}}
	if Migrate(&data) {
		t.Fatalf("nothing should fire when all collections are present")
	}
	if len(data.Notes) != 1 || data.Notes[0].ID != "n1" {
		t.Fatalf("existing notes must not be replaced: %v", data.Notes)
	}
}
