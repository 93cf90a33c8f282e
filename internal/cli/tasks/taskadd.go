package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/models"
	"github.com/tmalley/focusboard/internal/validation"
)

type TaskAddCmd struct {
	Text   string `arg:"" help:"Task text."`
	Column string `short:"c" help:"Target column title or id. Defaults to the first column."`
}

func (c *TaskAddCmd) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("task text must not be empty")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	columns, err := ctx.Store.GetAllColumns()
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return fmt.Errorf("no columns exist, run 'focusboard column add' first")
	}

	column, err := ResolveColumn(columns, c.Column)
	if err != nil {
		return err
	}

	existing, err := ctx.Store.GetTasksForColumn(column.ID)
	if err != nil {
		return err
	}

	task := models.Task{
		ID:        uuid.New().String(),
		Text:      strings.TrimSpace(c.Text),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		ColumnID:  column.ID,
		Position:  len(existing),
	}

	if err := validation.ValidateTask(task, columns); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task to %s: %s (ID: %s)\n", column.Title, task.Text, task.ID)
	return nil
}

// ResolveColumn finds a column by id or case-insensitive title. An empty
// selector picks the first column.
func ResolveColumn(columns []models.Column, selector string) (models.Column, error) {
	if selector == "" {
		return columns[0], nil
	}
	for _, col := range columns {
		if col.ID == selector || strings.EqualFold(col.Title, selector) {
			return col, nil
		}
	}
	return models.Column{}, fmt.Errorf("no column matching %q", selector)
}
