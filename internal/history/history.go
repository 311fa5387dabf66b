// Package history keeps a small, bounded list of recently generated links.
// It is a best-effort convenience feature: the list lives in memory and is
// mirrored to a single serialized blob in the state table. Storage problems
// never surface to the caller; the session just continues without history.
package history

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/thantzin/linklet/internal/db"
)

// Capacity is the maximum number of entries kept.
// Appending beyond it evicts the oldest entry.
const Capacity = 5

// stateKey is the single named key holding the serialized list.
const stateKey = "history"

// previewRunes is how many characters of the source text an entry keeps.
const previewRunes = 30

// Entry records one previously generated link.
// Entries are immutable once created; they are only appended or evicted.
type Entry struct {
	ID        string `json:"id"`
	Preview   string `json:"preview"`
	CreatedAt int64  `json:"created_at"`
	Link      string `json:"link"`
}

// Store owns the ordered list of entries, most-recent-first.
type Store struct {
	db      *sql.DB
	entries []Entry
}

// NewStore creates a Store and loads persisted entries.
// An absent key or malformed blob yields an empty list, never an error.
func NewStore(database *sql.DB) *Store {
	s := &Store{db: database}
	s.load()
	return s
}

// load reads the persisted list. Any failure leaves the list empty.
func (s *Store) load() {
	value, ok, err := db.GetState(s.db, stateKey)
	if err != nil || !ok {
		return
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return
	}
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	s.entries = entries
}

// Append inserts an entry at the front, evicts beyond Capacity, and persists
// the resulting list. Persistence failures are swallowed; the in-memory list
// is updated regardless.
func (s *Store) Append(e Entry) {
	s.entries = append([]Entry{e}, s.entries...)
	if len(s.entries) > Capacity {
		s.entries = s.entries[:Capacity]
	}
	s.persist()
}

// Entries returns a copy of the list, most-recent-first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Clear drops all entries and removes the persisted blob.
// Returns the number of entries removed.
func (s *Store) Clear() int {
	n := len(s.entries)
	s.entries = nil
	_ = db.DeleteState(s.db, stateKey)
	return n
}

// persist rewrites the whole list under the state key, best-effort.
func (s *Store) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return
	}
	_ = db.SetState(s.db, stateKey, string(data))
}

// NewEntry builds an entry for the given source text and generated link.
func NewEntry(text, link string) (Entry, error) {
	id, err := generateULID()
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:        id,
		Preview:   Preview(text),
		CreatedAt: time.Now().Unix(),
		Link:      link,
	}, nil
}

// Preview returns the first 30 characters of text, with an ellipsis when
// truncated. Counted in runes so multi-byte text is never cut mid-character.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "…"
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
