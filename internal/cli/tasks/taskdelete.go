package tasks

import (
	"fmt"

	"github.com/tmalley/focusboard/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s\n", task.Text)
	return nil
}
