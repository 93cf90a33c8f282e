package tasks

import (
	"fmt"

	"github.com/tmalley/focusboard/internal/cli"
)

type TaskListCmd struct {
	All bool `short:"a" help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	columns, err := ctx.Store.GetAllColumns()
	if err != nil {
		return err
	}

	for _, column := range columns {
		tasks, err := ctx.Store.GetTasksForColumn(column.ID)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", column.Title)
		shown := 0
		for _, task := range tasks {
			if task.Completed && !c.All {
				continue
			}
			mark := " "
			if task.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %s  (%s)\n", mark, task.Text, task.ID)
			shown++
		}
		if shown == 0 {
			fmt.Println("  (empty)")
		}
	}
	return nil
}
