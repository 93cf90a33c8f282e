package tasks

import (
	"fmt"
	"strings"

	"github.com/tmalley/focusboard/internal/cli"
)

type TaskEditCmd struct {
	ID   string `arg:"" help:"Task id."`
	Text string `arg:"" help:"New task text."`
}

func (c *TaskEditCmd) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("task text must not be empty")
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}

	task.Text = strings.TrimSpace(c.Text)
	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}

	fmt.Printf("Updated task %s\n", task.ID)
	return nil
}
