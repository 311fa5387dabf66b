package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	// Use temp directory for test isolation
	tmpDir := t.TempDir()

	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	// Verify database file was created
	dbPath := filepath.Join(tmpDir, "linklet.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file not created at %s", dbPath)
	}

	// Verify WAL mode is active
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		t.Fatalf("failed to query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %s, want wal", journalMode)
	}

	// Verify schema was created by checking for state table
	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='state'").Scan(&tableName)
	if err != nil {
		t.Fatalf("state table not found: %v", err)
	}
	if tableName != "state" {
		t.Errorf("table name = %s, want state", tableName)
	}
}

func TestInit_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	baseDir := filepath.Join(tmpDir, "nested", "path", ".linklet")

	db, err := Init(baseDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		t.Errorf("base directory not created at %s", baseDir)
	}
}

func TestInit_SchemaVersion(t *testing.T) {
	tmpDir := t.TempDir()

	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	version, err := GetUserVersion(db)
	if err != nil {
		t.Fatalf("GetUserVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestInit_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	db1, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("first Init() error = %v", err)
	}
	db1.Close()

	db2, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	defer db2.Close()
}

func TestState_SetGet(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if err := SetState(db, "history", `[{"id":"x"}]`); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}

	value, ok, err := GetState(db, "history")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if !ok {
		t.Fatal("GetState() ok = false, want true")
	}
	if value != `[{"id":"x"}]` {
		t.Errorf("value = %q, want %q", value, `[{"id":"x"}]`)
	}
}

func TestState_SetOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if err := SetState(db, "history", "first"); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}
	if err := SetState(db, "history", "second"); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}

	value, ok, err := GetState(db, "history")
	if err != nil || !ok {
		t.Fatalf("GetState() = %q, %v, %v", value, ok, err)
	}
	if value != "second" {
		t.Errorf("value = %q, want %q", value, "second")
	}
}

func TestState_GetMissing(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	value, ok, err := GetState(db, "nope")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if ok {
		t.Error("GetState() ok = true for missing key")
	}
	if value != "" {
		t.Errorf("value = %q, want empty", value)
	}
}

func TestState_Delete(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if err := SetState(db, "history", "data"); err != nil {
		t.Fatalf("SetState() error = %v", err)
	}
	if err := DeleteState(db, "history"); err != nil {
		t.Fatalf("DeleteState() error = %v", err)
	}

	_, ok, err := GetState(db, "history")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if ok {
		t.Error("key still present after DeleteState")
	}

	// Deleting a missing key is a no-op
	if err := DeleteState(db, "history"); err != nil {
		t.Errorf("DeleteState() on missing key error = %v", err)
	}
}
