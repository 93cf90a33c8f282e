package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);"),
		},
		"002_add_name.sql": &fstest.MapFile{
			Data: []byte("ALTER TABLE things ADD COLUMN name TEXT;"),
		},
	}
}

func TestApplyMigrationsFreshDatabase(t *testing.T) {
	db := testDB(t)
	runner := NewRunner(db, testFS())

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() failed: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Both migrations landed
	if _, err := db.Exec("INSERT INTO things (id, name) VALUES ('a', 'b')"); err != nil {
		t.Errorf("schema incomplete after migrations: %v", err)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := testDB(t)
	runner := NewRunner(db, testFS())

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations() failed: %v", err)
	}

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations() failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("applied = %d on up-to-date schema, want 0", applied)
	}
}

func TestApplyMigrationsPartialUpgrade(t *testing.T) {
	db := testDB(t)

	first := fstest.MapFS{"001_init.sql": testFS()["001_init.sql"]}
	if _, err := NewRunner(db, first).ApplyMigrations(nil); err != nil {
		t.Fatalf("initial migration failed: %v", err)
	}

	applied, err := NewRunner(db, testFS()).ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("upgrade failed: %v", err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want only the pending 1", applied)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := testDB(t)

	bad := testFS()
	bad["002_add_name.sql"] = &fstest.MapFile{Data: []byte("THIS IS NOT SQL;")}

	applied, err := NewRunner(db, bad).ApplyMigrations(nil)
	if err == nil {
		t.Fatal("ApplyMigrations() with broken SQL returned nil error")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1 before the failure", applied)
	}

	version, err := NewRunner(db, testFS()).GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() failed: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1 after rolled-back migration", version)
	}
}

func TestValidateVersionRejectsNewerSchema(t *testing.T) {
	db := testDB(t)
	runner := NewRunner(db, testFS())

	if err := runner.EnsureSchemaVersionTable(); err != nil {
		t.Fatalf("EnsureSchemaVersionTable() failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatalf("failed to set version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() accepted a schema newer than the application supports")
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	db := testDB(t)
	bad := fstest.MapFS{
		"init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}

	if _, err := NewRunner(db, bad).ReadMigrationFiles(); err == nil {
		t.Error("ReadMigrationFiles() accepted a filename without a version prefix")
	}
}
