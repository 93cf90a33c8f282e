package archives

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tmalley/focusboard/internal/archive"
	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/models"
)

// ExportCmd writes completed tasks and focus time into a day-keyed
// markdown archive, grouped by completion date, most recent day first.
type ExportCmd struct {
	Output string `short:"o" help:"Archive file path." default:"archive.md"`
	Days   int    `short:"d" help:"Only export days within the last N days. 0 exports everything." default:"0"`
}

func (c *ExportCmd) Validate() error {
	if c.Days < 0 {
		return fmt.Errorf("days must not be negative")
	}
	return nil
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	var cutoff string
	if c.Days > 0 {
		cutoff = time.Now().AddDate(0, 0, -c.Days).Format(constants.DateFormat)
	}

	byDate := make(map[string][]models.Task)
	for _, task := range tasks {
		if !task.Completed || task.CompletedAt == nil {
			continue
		}
		done, err := time.Parse(time.RFC3339, *task.CompletedAt)
		if err != nil {
			continue
		}
		date := done.Local().Format(constants.DateFormat)
		if cutoff != "" && date < cutoff {
			continue
		}
		byDate[date] = append(byDate[date], task)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	var snapshots []archive.DaySnapshot
	for _, date := range dates {
		record, err := ctx.Store.GetWorkRecord(date)
		if err != nil {
			return err
		}
		snap := archive.DaySnapshot{Date: date, FocusMinutes: record.FocusMinutes()}
		for _, task := range byDate[date] {
			snap.Tasks = append(snap.Tasks, archive.TaskLine{Text: task.Text, Done: task.Completed})
		}
		snapshots = append(snapshots, snap)
	}

	if len(snapshots) == 0 {
		fmt.Println("Nothing to export")
		return nil
	}

	path, err := expandPath(c.Output)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(archive.Render(snapshots)), 0600); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	fmt.Printf("Exported %d day(s) to %s\n", len(snapshots), path)
	return nil
}

// ImportCmd reads an archive file back into the board. Imported tasks
// land in the given column with their completion state and date intact.
type ImportCmd struct {
	Input  string `arg:"" help:"Archive file path."`
	Column string `short:"c" help:"Target column title or id. Defaults to the last column."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	path, err := expandPath(c.Input)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	snapshots := archive.ParseArchive(string(data))
	if len(snapshots) == 0 {
		fmt.Println("No archive sections found")
		return nil
	}

	columns, err := ctx.Store.GetAllColumns()
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return fmt.Errorf("no columns exist")
	}

	target := columns[len(columns)-1]
	if c.Column != "" {
		for _, col := range columns {
			if col.ID == c.Column || strings.EqualFold(col.Title, c.Column) {
				target = col
				break
			}
		}
	}

	existing, err := ctx.Store.GetTasksForColumn(target.ID)
	if err != nil {
		return err
	}
	position := len(existing)

	imported := 0
	for _, snap := range snapshots {
		day, err := time.ParseInLocation(constants.DateFormat, snap.Date, time.Local)
		if err != nil {
			continue
		}
		for _, line := range snap.Tasks {
			task := models.Task{
				ID:        uuid.New().String(),
				Text:      line.Text,
				Completed: line.Done,
				CreatedAt: day.UTC().Format(time.RFC3339),
				ColumnID:  target.ID,
				Position:  position,
			}
			if line.Done {
				completedAt := day.UTC().Format(time.RFC3339)
				task.CompletedAt = &completedAt
			}
			if err := ctx.Store.AddTask(task); err != nil {
				return err
			}
			position++
			imported++
		}
	}

	fmt.Printf("Imported %d task(s) into %s\n", imported, target.Title)
	return nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
