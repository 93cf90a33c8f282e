package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/tmalley/focusboard/internal/models"
)

func scanTask(scan func(...any) error) (models.Task, error) {
	var t models.Task
	var completed int
	var completedAt sql.NullString

	if err := scan(&t.ID, &t.Text, &completed, &t.CreatedAt, &completedAt, &t.ColumnID, &t.Position); err != nil {
		return models.Task{}, err
	}

	t.Completed = completed != 0
	if completedAt.Valid {
		t.CompletedAt = &completedAt.String
	}
	return t, nil
}

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, text, completed, created_at, completed_at, column_id, position
		FROM tasks WHERE id = ?`, id)

	task, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, fmt.Errorf("task with id %s not found", id)
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, text, completed, created_at, completed_at, column_id, position
		FROM tasks ORDER BY column_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *Store) GetTasksForColumn(columnID string) ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, text, completed, created_at, completed_at, column_id, position
		FROM tasks WHERE column_id = ? ORDER BY position`, columnID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	var completedAt sql.NullString
	if task.CompletedAt != nil {
		completedAt = sql.NullString{String: *task.CompletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO tasks (id, text, completed, created_at, completed_at, column_id, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Text, task.Completed, task.CreatedAt, completedAt, task.ColumnID, task.Position,
	)
	return err
}

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("task with id %s not found", id)
	}
	return nil
}

// MoveTask reassigns a task to a column at the given position. Positions
// in the source and target columns are renumbered so they stay dense.
func (s *Store) MoveTask(id, columnID string, position int) error {
	task, err := s.GetTask(id)
	if err != nil {
		return err
	}
	if _, err := s.GetColumn(columnID); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Close the gap in the source column
	if _, err := tx.Exec(`
		UPDATE tasks SET position = position - 1
		WHERE column_id = ? AND position > ?`,
		task.ColumnID, task.Position,
	); err != nil {
		return err
	}

	// Open a slot in the target column
	if position < 0 {
		position = 0
	}
	if _, err := tx.Exec(`
		UPDATE tasks SET position = position + 1
		WHERE column_id = ? AND position >= ? AND id != ?`,
		columnID, position, id,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE tasks SET column_id = ?, position = ? WHERE id = ?`,
		columnID, position, id,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// PruneCompletedTasks removes completed tasks whose completed_at date is
// strictly before the given YYYY-MM-DD date.
func (s *Store) PruneCompletedTasks(before string) (int, error) {
	res, err := s.db.Exec(`
		DELETE FROM tasks
		WHERE completed = 1 AND completed_at IS NOT NULL AND date(completed_at) < date(?)`,
		before,
	)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
