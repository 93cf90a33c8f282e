package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/tmalley/focusboard/internal/models"
)

// AddWorkSeconds upserts the work record for a date and adds to it.
// The operation is additive; records are never decremented or removed.
func (s *Store) AddWorkSeconds(date string, seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("cannot add negative work seconds")
	}
	_, err := s.db.Exec(`
		INSERT INTO work_log (date, seconds_worked) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET seconds_worked = seconds_worked + excluded.seconds_worked`,
		date, seconds,
	)
	return err
}

func (s *Store) GetWorkRecord(date string) (models.WorkRecord, error) {
	row := s.db.QueryRow("SELECT date, seconds_worked FROM work_log WHERE date = ?", date)

	var r models.WorkRecord
	if err := row.Scan(&r.Date, &r.SecondsWorked); err != nil {
		if err == sql.ErrNoRows {
			// Absent record means zero seconds worked that day
			return models.WorkRecord{Date: date}, nil
		}
		return models.WorkRecord{}, err
	}
	return r, nil
}

func (s *Store) GetWorkRecords(startDate, endDate string) ([]models.WorkRecord, error) {
	rows, err := s.db.Query(`
		SELECT date, seconds_worked FROM work_log
		WHERE date >= ? AND date <= ? ORDER BY date`,
		startDate, endDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.WorkRecord
	for rows.Next() {
		var r models.WorkRecord
		if err := rows.Scan(&r.Date, &r.SecondsWorked); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
