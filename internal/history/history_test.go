package history

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/thantzin/linklet/internal/db"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func makeEntry(t *testing.T, n int) Entry {
	t.Helper()
	e, err := NewEntry(fmt.Sprintf("text number %d", n), fmt.Sprintf("https://x.test/app#tok%d", n))
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	return e
}

func TestNewStore_EmptyDatabase(t *testing.T) {
	database := setupDB(t)

	s := NewStore(database)
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestAppend_MostRecentFirst(t *testing.T) {
	database := setupDB(t)
	s := NewStore(database)

	first := makeEntry(t, 1)
	second := makeEntry(t, 2)
	s.Append(first)
	s.Append(second)

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("Len = %d, want 2", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Errorf("entries[0].ID = %q, want most recent %q", entries[0].ID, second.ID)
	}
	if entries[1].ID != first.ID {
		t.Errorf("entries[1].ID = %q, want %q", entries[1].ID, first.ID)
	}
}

func TestAppend_CapacityBound(t *testing.T) {
	database := setupDB(t)
	s := NewStore(database)

	var appended []Entry
	for i := 1; i <= 7; i++ {
		e := makeEntry(t, i)
		appended = append(appended, e)
		s.Append(e)
	}

	entries := s.Entries()
	if len(entries) != Capacity {
		t.Fatalf("Len = %d, want %d", len(entries), Capacity)
	}

	// The 5 most recent, most-recent-first: entries 7,6,5,4,3
	for i := 0; i < Capacity; i++ {
		want := appended[6-i]
		if entries[i].ID != want.ID {
			t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, want.ID)
		}
	}
}

func TestAppend_PersistsAcrossStores(t *testing.T) {
	database := setupDB(t)

	s1 := NewStore(database)
	e := makeEntry(t, 1)
	s1.Append(e)

	// A fresh store sees what the first one persisted
	s2 := NewStore(database)
	entries := s2.Entries()
	if len(entries) != 1 {
		t.Fatalf("Len = %d, want 1", len(entries))
	}
	if entries[0].ID != e.ID {
		t.Errorf("ID = %q, want %q", entries[0].ID, e.ID)
	}
	if entries[0].Link != e.Link {
		t.Errorf("Link = %q, want %q", entries[0].Link, e.Link)
	}
}

func TestNewStore_MalformedBlob(t *testing.T) {
	database := setupDB(t)

	if err := db.SetState(database, "history", "{definitely not a list"); err != nil {
		t.Fatalf("SetState: %v", err)
	}

	s := NewStore(database)
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 for malformed blob", s.Len())
	}
}

func TestNewStore_OversizedBlobTruncated(t *testing.T) {
	database := setupDB(t)

	// Persist 8 entries out-of-band, as if written by a buggy build
	blob := "["
	for i := 0; i < 8; i++ {
		if i > 0 {
			blob += ","
		}
		blob += fmt.Sprintf(`{"id":"id%d","preview":"p","created_at":1,"link":"l"}`, i)
	}
	blob += "]"
	if err := db.SetState(database, "history", blob); err != nil {
		t.Fatalf("SetState: %v", err)
	}

	s := NewStore(database)
	if s.Len() != Capacity {
		t.Errorf("Len = %d, want %d", s.Len(), Capacity)
	}
}

func TestClear(t *testing.T) {
	database := setupDB(t)
	s := NewStore(database)

	s.Append(makeEntry(t, 1))
	s.Append(makeEntry(t, 2))

	if n := s.Clear(); n != 2 {
		t.Errorf("Clear = %d, want 2", n)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 after Clear", s.Len())
	}

	// Cleared state persists
	s2 := NewStore(database)
	if s2.Len() != 0 {
		t.Errorf("fresh store Len = %d, want 0 after Clear", s2.Len())
	}
}

func TestAppend_SwallowsWriteFailure(t *testing.T) {
	database := setupDB(t)
	s := NewStore(database)
	s.Append(makeEntry(t, 1))

	// Kill the database out from under the store; the next append cannot
	// persist but must still land in the in-memory list.
	database.Close()

	e := makeEntry(t, 2)
	s.Append(e)

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("Len = %d, want 2 after failed persist", len(entries))
	}
	if entries[0].ID != e.ID {
		t.Errorf("entries[0].ID = %q, want %q", entries[0].ID, e.ID)
	}
}

func TestClear_SwallowsWriteFailure(t *testing.T) {
	database := setupDB(t)
	s := NewStore(database)
	s.Append(makeEntry(t, 1))
	s.Append(makeEntry(t, 2))

	database.Close()

	if n := s.Clear(); n != 2 {
		t.Errorf("Clear = %d, want 2 on dead database", n)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 after Clear on dead database", s.Len())
	}
}

func TestNewStore_DeadDatabase(t *testing.T) {
	database := setupDB(t)
	database.Close()

	s := NewStore(database)
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 when load fails", s.Len())
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	database := setupDB(t)
	s := NewStore(database)
	s.Append(makeEntry(t, 1))

	entries := s.Entries()
	entries[0].Preview = "mutated"

	if s.Entries()[0].Preview == "mutated" {
		t.Error("Entries should return a defensive copy")
	}
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry("hello world", "https://x.test/app#aGVsbG8")
	if err != nil {
		t.Fatalf("NewEntry: %v", err)
	}
	if len(e.ID) != 26 {
		t.Errorf("ID length = %d, want 26 (ULID)", len(e.ID))
	}
	if e.Preview != "hello world" {
		t.Errorf("Preview = %q, want %q", e.Preview, "hello world")
	}
	if e.CreatedAt == 0 {
		t.Error("CreatedAt should be set")
	}
	if e.Link != "https://x.test/app#aGVsbG8" {
		t.Errorf("Link = %q", e.Link)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short", "hello", "hello"},
		{"exactly 30", strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{"truncated", strings.Repeat("a", 31), strings.Repeat("a", 30) + "…"},
		{"multibyte counted as runes", strings.Repeat("世", 31), strings.Repeat("世", 30) + "…"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.text); got != tt.want {
				t.Errorf("Preview(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
