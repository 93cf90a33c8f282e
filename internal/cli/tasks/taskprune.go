package tasks

import (
	"fmt"
	"time"

	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/constants"
)

// TaskPruneCmd removes stale completed tasks. Pruning is deliberately
// independent of archive export; run 'archive export' first if the
// completed tasks should be preserved in the markdown archive.
type TaskPruneCmd struct {
	Days int `short:"d" help:"Remove completed tasks older than this many days." default:"7"`
}

func (c *TaskPruneCmd) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("days must not be negative")
	}
	return nil
}

func (c *TaskPruneCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	cutoff := time.Now().AddDate(0, 0, -c.Days).Format(constants.DateFormat)
	removed, err := ctx.Store.PruneCompletedTasks(cutoff)
	if err != nil {
		return err
	}

	fmt.Printf("Pruned %d completed task(s) older than %s\n", removed, cutoff)
	return nil
}
