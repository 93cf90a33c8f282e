package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func createTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE marker (value TEXT); INSERT INTO marker VALUES ('original')"); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return dbPath
}

func markerValue(t *testing.T, dbPath string) string {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var value string
	if err := db.QueryRow("SELECT value FROM marker").Scan(&value); err != nil {
		t.Fatalf("failed to read marker: %v", err)
	}
	return value
}

func TestCreateAndList(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("len(backups) = %d, want 1", len(backups))
	}
	if backups[0].Path != backupPath {
		t.Errorf("List()[0].Path = %s, want %s", backups[0].Path, backupPath)
	}
	if backups[0].Size == 0 {
		t.Error("backup size = 0, want content")
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("Create() on a missing database returned nil error")
	}
}

func TestListEmpty(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nothing.db"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("len(backups) = %d, want 0", len(backups))
	}
}

func TestRestore(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	// Change the live database after the backup
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("UPDATE marker SET value = 'changed'"); err != nil {
		t.Fatalf("failed to update marker: %v", err)
	}
	db.Close()

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}

	if got := markerValue(t, dbPath); got != "original" {
		t.Errorf("marker = %q after restore, want %q", got, "original")
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	if err := mgr.Restore(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("Restore() with a missing backup returned nil error")
	}
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	corrupt := filepath.Join(t.TempDir(), "corrupt.db")
	if err := os.WriteFile(corrupt, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if err := mgr.Restore(corrupt); err == nil {
		t.Error("Restore() accepted a corrupt backup")
	}
	if got := markerValue(t, dbPath); got != "original" {
		t.Errorf("marker = %q, want untouched %q", got, "original")
	}
}
