package tasks

import (
	"fmt"

	"github.com/tmalley/focusboard/internal/cli"
)

type TaskMoveCmd struct {
	ID       string `arg:"" help:"Task id."`
	Column   string `arg:"" help:"Target column title or id."`
	Position int    `short:"p" help:"Position within the target column (0-based, appended when omitted)." default:"-1"`
}

func (c *TaskMoveCmd) Run(ctx *cli.Context) error {
	columns, err := ctx.Store.GetAllColumns()
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return fmt.Errorf("no columns exist")
	}

	column, err := ResolveColumn(columns, c.Column)
	if err != nil {
		return err
	}

	position := c.Position
	if position < 0 {
		existing, err := ctx.Store.GetTasksForColumn(column.ID)
		if err != nil {
			return err
		}
		position = len(existing)
	}

	if err := ctx.Store.MoveTask(c.ID, column.ID, position); err != nil {
		return err
	}

	fmt.Printf("Moved task %s to %s (position %d)\n", c.ID, column.Title, position)
	return nil
}
