package models

import "fmt"

// Task is a single card on the board.
type Task struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`             // RFC3339 timestamp
	CompletedAt *string `json:"completed_at,omitempty"` // RFC3339 timestamp, set exactly while Completed
	ColumnID    string  `json:"column_id"`
	Position    int     `json:"position"` // ordering within the column, 0-based
}

// Column is a board column tasks are grouped under.
type Column struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"` // ordering on the board, 0-based
}

// Validate checks structural task invariants.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task has no id")
	}
	if t.Text == "" {
		return fmt.Errorf("task text must not be empty")
	}
	if t.ColumnID == "" {
		return fmt.Errorf("task %s has no column", t.ID)
	}
	if t.Completed && t.CompletedAt == nil {
		return fmt.Errorf("task %s is completed but has no completed_at", t.ID)
	}
	if !t.Completed && t.CompletedAt != nil {
		return fmt.Errorf("task %s is not completed but has a completed_at", t.ID)
	}
	return nil
}

// Validate checks structural column invariants.
func (c Column) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("column has no id")
	}
	if c.Title == "" {
		return fmt.Errorf("column title must not be empty")
	}
	return nil
}
