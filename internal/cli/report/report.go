package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/stats"
)

type StatsCmd struct {
	Days int    `short:"d" help:"Number of days to report, ending today." default:"7"`
	From string `help:"Report start date (YYYY-MM-DD). Overrides --days."`
	To   string `help:"Report end date (YYYY-MM-DD). Defaults to today."`
}

func (c *StatsCmd) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("days must be positive")
	}
	for _, d := range []string{c.From, c.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(constants.DateFormat, d); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", d)
		}
	}
	return nil
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	to := c.To
	if to == "" {
		to = cli.Today()
	}
	from := c.From
	if from == "" {
		end, _ := time.Parse(constants.DateFormat, to)
		from = end.AddDate(0, 0, -(c.Days - 1)).Format(constants.DateFormat)
	}

	records, err := ctx.Store.GetWorkRecords(from, to)
	if err != nil {
		return err
	}
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	summary, err := stats.BuildSummary(records, tasks, from, to)
	if err != nil {
		return err
	}

	fmt.Printf("Focus report %s to %s\n\n", from, to)
	for _, day := range summary.Days {
		bar := strings.Repeat("#", day.FocusMinutes/15)
		fmt.Printf("  %s  %8s  %2d done  %s\n", day.Date, cli.FormatMinutes(day.FocusMinutes), day.TasksCompleted, bar)
	}
	fmt.Printf("\nTotal focus:   %s\n", cli.FormatMinutes(summary.TotalFocusMinutes))
	fmt.Printf("Tasks done:    %d\n", summary.TotalCompleted)
	fmt.Printf("Active days:   %d of %d\n", summary.ActiveDays, len(summary.Days))
	fmt.Printf("Daily average: %.0fm\n", summary.AvgFocusMinutes)
	if summary.BestDay != "" {
		fmt.Printf("Best day:      %s\n", summary.BestDay)
	}
	return nil
}
