package tasks

import (
	"fmt"
	"time"

	"github.com/tmalley/focusboard/internal/cli"
)

type TaskDoneCmd struct {
	ID   string `arg:"" help:"Task id."`
	Undo bool   `help:"Mark the task as not completed instead."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}

	if c.Undo {
		if !task.Completed {
			return fmt.Errorf("task %s is not completed", c.ID)
		}
		task.Completed = false
		task.CompletedAt = nil
	} else {
		if task.Completed {
			return fmt.Errorf("task %s is already completed", c.ID)
		}
		now := time.Now().UTC().Format(time.RFC3339)
		task.Completed = true
		task.CompletedAt = &now
	}

	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}

	if c.Undo {
		fmt.Printf("Reopened task: %s\n", task.Text)
	} else {
		fmt.Printf("Completed task: %s\n", task.Text)
	}
	return nil
}
