package storage

import (
	"github.com/tmalley/focusboard/internal/models"
	"github.com/tmalley/focusboard/internal/storage/sqlite"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Columns
	AddColumn(models.Column) error
	GetColumn(id string) (models.Column, error)
	GetAllColumns() ([]models.Column, error)
	UpdateColumn(models.Column) error
	DeleteColumn(id string) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	GetTasksForColumn(columnID string) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	// MoveTask reassigns a task to a column at the given position and
	// renumbers the affected columns so positions stay dense.
	MoveTask(id, columnID string, position int) error
	// PruneCompletedTasks removes completed tasks whose completion is
	// older than the given date (YYYY-MM-DD). Returns the removed count.
	PruneCompletedTasks(before string) (int, error)

	// Work log
	AddWorkSeconds(date string, seconds int) error
	GetWorkRecord(date string) (models.WorkRecord, error)
	GetWorkRecords(startDate, endDate string) ([]models.WorkRecord, error)

	// Utils
	GetConfigPath() string
}

// NewSQLiteStore creates the default sqlite-backed provider.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}
