package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/tmalley/focusboard/internal/models"
)

func (s *Store) AddColumn(column models.Column) error {
	return s.UpdateColumn(column)
}

func (s *Store) GetColumn(id string) (models.Column, error) {
	row := s.db.QueryRow("SELECT id, title, position FROM columns WHERE id = ?", id)

	var c models.Column
	if err := row.Scan(&c.ID, &c.Title, &c.Position); err != nil {
		if err == sql.ErrNoRows {
			return models.Column{}, fmt.Errorf("column with id %s not found", id)
		}
		return models.Column{}, err
	}
	return c, nil
}

func (s *Store) GetAllColumns() ([]models.Column, error) {
	rows, err := s.db.Query("SELECT id, title, position FROM columns ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var c models.Column
		if err := rows.Scan(&c.ID, &c.Title, &c.Position); err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

func (s *Store) UpdateColumn(column models.Column) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO columns (id, title, position)
		VALUES (?, ?, ?)`,
		column.ID, column.Title, column.Position,
	)
	return err
}

// DeleteColumn removes a column and every task in it.
func (s *Store) DeleteColumn(id string) error {
	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM columns WHERE id = ?", id).Scan(&count); err != nil {
		return fmt.Errorf("failed to check column existence: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("column with id %s not found", id)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tasks WHERE column_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM columns WHERE id = ?", id); err != nil {
		return err
	}

	return tx.Commit()
}
