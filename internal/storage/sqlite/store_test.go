package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitSeedsDefaults(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.WorkMinutes != constants.DefaultWorkMinutes {
		t.Errorf("WorkMinutes = %d, want default %d", settings.WorkMinutes, constants.DefaultWorkMinutes)
	}
	if settings.MicroBreakMinInterval != constants.DefaultMicroBreakMinInterval {
		t.Errorf("MicroBreakMinInterval = %d, want default %d", settings.MicroBreakMinInterval, constants.DefaultMicroBreakMinInterval)
	}

	columns, err := store.GetAllColumns()
	if err != nil {
		t.Fatalf("GetAllColumns() failed: %v", err)
	}
	if len(columns) != 3 {
		t.Fatalf("len(columns) = %d, want the seeded 3", len(columns))
	}
	wantTitles := []string{"To Do", "Doing", "Done"}
	for i, column := range columns {
		if column.Title != wantTitles[i] {
			t.Errorf("columns[%d].Title = %q, want %q", i, column.Title, wantTitles[i])
		}
		if column.Position != i {
			t.Errorf("columns[%d].Position = %d, want %d", i, column.Position, i)
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Init(); err != nil {
		t.Fatalf("second Init() failed: %v", err)
	}

	columns, err := store.GetAllColumns()
	if err != nil {
		t.Fatalf("GetAllColumns() failed: %v", err)
	}
	if len(columns) != 3 {
		t.Errorf("len(columns) = %d after re-init, want 3", len(columns))
	}
}

func TestLoadMissingDatabase(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database returned nil error")
	}
}

func TestSettingsRoundtrip(t *testing.T) {
	store := setupTestStore(t)

	settings := models.Settings{
		WorkMinutes:           50,
		BreakMinutes:          10,
		MicroBreakSeconds:     20,
		MicroBreakMinInterval: 5,
		MicroBreakMaxInterval: 15,
		EnableMicroBreaks:     false,
		AutoStartWork:         true,
		AutoStartBreak:        false,
		ToneVolume:            55,
		BackgroundVolume:      30,
		CustomSoundPath:       "/tmp/chime.wav",
		ThemeColor:            "#FF0000",
		DarkMode:              false,
		UIScale:               0.75,
	}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got != settings {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", got, settings)
	}
}

func TestGetSettingsMergesDefaults(t *testing.T) {
	store := setupTestStore(t)

	// Wipe one key to simulate a partially written record
	if _, err := store.db.Exec("DELETE FROM settings WHERE key = ?", constants.SettingToneVolume); err != nil {
		t.Fatalf("failed to delete setting: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got.ToneVolume != constants.DefaultToneVolume {
		t.Errorf("ToneVolume = %d, want merged default %d", got.ToneVolume, constants.DefaultToneVolume)
	}
}

func TestGetSettingsKeepsMutedVolume(t *testing.T) {
	store := setupTestStore(t)

	muted := models.DefaultSettings()
	muted.ToneVolume = 0
	muted.BackgroundVolume = 0
	if err := store.SaveSettings(muted); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if got.ToneVolume != 0 {
		t.Errorf("ToneVolume = %d after reload, want muted 0", got.ToneVolume)
	}
	if got.BackgroundVolume != 0 {
		t.Errorf("BackgroundVolume = %d after reload, want muted 0", got.BackgroundVolume)
	}
}

func addTestTask(t *testing.T, store *Store, columnID, text string, position int) models.Task {
	t.Helper()
	task := models.Task{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		ColumnID:  columnID,
		Position:  position,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask(%q) failed: %v", text, err)
	}
	return task
}

func TestTaskCRUD(t *testing.T) {
	store := setupTestStore(t)
	columns, _ := store.GetAllColumns()

	task := addTestTask(t, store, columns[0].ID, "write report", 0)

	got, err := store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask() failed: %v", err)
	}
	if got.Text != "write report" || got.Completed {
		t.Errorf("GetTask() = %+v, want fresh task", got)
	}

	completedAt := time.Now().UTC().Format(time.RFC3339)
	got.Completed = true
	got.CompletedAt = &completedAt
	if err := store.UpdateTask(got); err != nil {
		t.Fatalf("UpdateTask() failed: %v", err)
	}

	got, err = store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask() after update failed: %v", err)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Errorf("task not marked completed: %+v", got)
	}

	if err := store.DeleteTask(task.ID); err != nil {
		t.Fatalf("DeleteTask() failed: %v", err)
	}
	if _, err := store.GetTask(task.ID); err == nil {
		t.Error("GetTask() after delete returned nil error")
	}
	if err := store.DeleteTask(task.ID); err == nil {
		t.Error("DeleteTask() on a missing task returned nil error")
	}
}

func TestMoveTaskRenumbersColumns(t *testing.T) {
	store := setupTestStore(t)
	columns, _ := store.GetAllColumns()
	todo, doing := columns[0], columns[1]

	a := addTestTask(t, store, todo.ID, "a", 0)
	b := addTestTask(t, store, todo.ID, "b", 1)
	c := addTestTask(t, store, todo.ID, "c", 2)
	x := addTestTask(t, store, doing.ID, "x", 0)

	// Move b to the head of Doing
	if err := store.MoveTask(b.ID, doing.ID, 0); err != nil {
		t.Fatalf("MoveTask() failed: %v", err)
	}

	todoTasks, _ := store.GetTasksForColumn(todo.ID)
	if len(todoTasks) != 2 {
		t.Fatalf("len(todo) = %d, want 2", len(todoTasks))
	}
	if todoTasks[0].ID != a.ID || todoTasks[0].Position != 0 {
		t.Errorf("todo[0] = %s@%d, want a@0", todoTasks[0].Text, todoTasks[0].Position)
	}
	if todoTasks[1].ID != c.ID || todoTasks[1].Position != 1 {
		t.Errorf("todo[1] = %s@%d, want c@1 after gap closed", todoTasks[1].Text, todoTasks[1].Position)
	}

	doingTasks, _ := store.GetTasksForColumn(doing.ID)
	if len(doingTasks) != 2 {
		t.Fatalf("len(doing) = %d, want 2", len(doingTasks))
	}
	if doingTasks[0].ID != b.ID || doingTasks[0].Position != 0 {
		t.Errorf("doing[0] = %s@%d, want b@0", doingTasks[0].Text, doingTasks[0].Position)
	}
	if doingTasks[1].ID != x.ID || doingTasks[1].Position != 1 {
		t.Errorf("doing[1] = %s@%d, want x shifted to 1", doingTasks[1].Text, doingTasks[1].Position)
	}
}

func TestMoveTaskUnknownColumn(t *testing.T) {
	store := setupTestStore(t)
	columns, _ := store.GetAllColumns()
	task := addTestTask(t, store, columns[0].ID, "a", 0)

	if err := store.MoveTask(task.ID, "no-such-column", 0); err == nil {
		t.Error("MoveTask() to an unknown column returned nil error")
	}
}

func TestPruneCompletedTasks(t *testing.T) {
	store := setupTestStore(t)
	columns, _ := store.GetAllColumns()
	done := columns[2]

	old := addTestTask(t, store, done.ID, "old", 0)
	oldDate := time.Now().AddDate(0, 0, -30).UTC().Format(time.RFC3339)
	old.Completed = true
	old.CompletedAt = &oldDate
	if err := store.UpdateTask(old); err != nil {
		t.Fatalf("UpdateTask() failed: %v", err)
	}

	recent := addTestTask(t, store, done.ID, "recent", 1)
	recentDate := time.Now().UTC().Format(time.RFC3339)
	recent.Completed = true
	recent.CompletedAt = &recentDate
	if err := store.UpdateTask(recent); err != nil {
		t.Fatalf("UpdateTask() failed: %v", err)
	}

	// An open task never gets pruned regardless of age
	addTestTask(t, store, done.ID, "open", 2)

	cutoff := time.Now().AddDate(0, 0, -7).Format(constants.DateFormat)
	removed, err := store.PruneCompletedTasks(cutoff)
	if err != nil {
		t.Fatalf("PruneCompletedTasks() failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	remaining, _ := store.GetTasksForColumn(done.ID)
	if len(remaining) != 2 {
		t.Errorf("len(remaining) = %d, want 2", len(remaining))
	}
	for _, task := range remaining {
		if task.ID == old.ID {
			t.Error("old completed task survived pruning")
		}
	}
}

func TestColumnDeleteRemovesTasks(t *testing.T) {
	store := setupTestStore(t)
	columns, _ := store.GetAllColumns()
	todo := columns[0]

	addTestTask(t, store, todo.ID, "a", 0)
	addTestTask(t, store, todo.ID, "b", 1)

	if err := store.DeleteColumn(todo.ID); err != nil {
		t.Fatalf("DeleteColumn() failed: %v", err)
	}

	tasks, err := store.GetTasksForColumn(todo.ID)
	if err != nil {
		t.Fatalf("GetTasksForColumn() failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("len(tasks) = %d after column delete, want 0", len(tasks))
	}
}

func TestWorkLogUpsert(t *testing.T) {
	store := setupTestStore(t)
	date := "2026-08-24"

	if err := store.AddWorkSeconds(date, 30); err != nil {
		t.Fatalf("AddWorkSeconds() failed: %v", err)
	}
	if err := store.AddWorkSeconds(date, 45); err != nil {
		t.Fatalf("AddWorkSeconds() failed: %v", err)
	}

	record, err := store.GetWorkRecord(date)
	if err != nil {
		t.Fatalf("GetWorkRecord() failed: %v", err)
	}
	if record.SecondsWorked != 75 {
		t.Errorf("SecondsWorked = %d, want accumulated 75", record.SecondsWorked)
	}
}

func TestGetWorkRecordMissingDateIsZero(t *testing.T) {
	store := setupTestStore(t)

	record, err := store.GetWorkRecord("2026-01-01")
	if err != nil {
		t.Fatalf("GetWorkRecord() failed: %v", err)
	}
	if record.Date != "2026-01-01" || record.SecondsWorked != 0 {
		t.Errorf("record = %+v, want zero record for the date", record)
	}
}

func TestGetWorkRecordsRange(t *testing.T) {
	store := setupTestStore(t)

	for _, entry := range []struct {
		date    string
		seconds int
	}{
		{"2026-08-20", 600},
		{"2026-08-22", 1200},
		{"2026-08-25", 300},
	} {
		if err := store.AddWorkSeconds(entry.date, entry.seconds); err != nil {
			t.Fatalf("AddWorkSeconds(%s) failed: %v", entry.date, err)
		}
	}

	records, err := store.GetWorkRecords("2026-08-20", "2026-08-24")
	if err != nil {
		t.Fatalf("GetWorkRecords() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2 within range", len(records))
	}
	if records[0].Date != "2026-08-20" || records[1].Date != "2026-08-22" {
		t.Errorf("records = %+v, want 08-20 and 08-22", records)
	}
}
