package columns

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/models"
	"github.com/tmalley/focusboard/internal/validation"
)

type ColumnAddCmd struct {
	Title string `arg:"" help:"Column title."`
}

func (c *ColumnAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("column title must not be empty")
	}
	return nil
}

func (c *ColumnAddCmd) Run(ctx *cli.Context) error {
	columns, err := ctx.Store.GetAllColumns()
	if err != nil {
		return err
	}

	column := models.Column{
		ID:       uuid.New().String(),
		Title:    strings.TrimSpace(c.Title),
		Position: len(columns),
	}

	if err := validation.ValidateColumns(append(columns, column)); err != nil {
		return err
	}

	if err := ctx.Store.AddColumn(column); err != nil {
		return err
	}

	fmt.Printf("Added column: %s (ID: %s)\n", column.Title, column.ID)
	return nil
}

type ColumnListCmd struct{}

func (c *ColumnListCmd) Run(ctx *cli.Context) error {
	columns, err := ctx.Store.GetAllColumns()
	if err != nil {
		return err
	}

	if len(columns) == 0 {
		fmt.Println("No columns")
		return nil
	}
	for _, column := range columns {
		tasks, err := ctx.Store.GetTasksForColumn(column.ID)
		if err != nil {
			return err
		}
		fmt.Printf("%d. %s  (%d tasks, ID: %s)\n", column.Position+1, column.Title, len(tasks), column.ID)
	}
	return nil
}

type ColumnRenameCmd struct {
	ID    string `arg:"" help:"Column id."`
	Title string `arg:"" help:"New column title."`
}

func (c *ColumnRenameCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("column title must not be empty")
	}
	return nil
}

func (c *ColumnRenameCmd) Run(ctx *cli.Context) error {
	columns, err := ctx.Store.GetAllColumns()
	if err != nil {
		return err
	}

	found := false
	for i := range columns {
		if columns[i].ID == c.ID {
			columns[i].Title = strings.TrimSpace(c.Title)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no column with id %s", c.ID)
	}

	if err := validation.ValidateColumns(columns); err != nil {
		return err
	}

	for _, column := range columns {
		if column.ID == c.ID {
			if err := ctx.Store.UpdateColumn(column); err != nil {
				return err
			}
			fmt.Printf("Renamed column to %s\n", column.Title)
			return nil
		}
	}
	return nil
}

// ColumnDeleteCmd removes a column and every task in it.
type ColumnDeleteCmd struct {
	ID    string `arg:"" help:"Column id."`
	Force bool   `short:"f" help:"Delete even when the column still holds tasks."`
}

func (c *ColumnDeleteCmd) Run(ctx *cli.Context) error {
	ctx.PerformAutomaticBackup()

	tasks, err := ctx.Store.GetTasksForColumn(c.ID)
	if err != nil {
		return err
	}
	if len(tasks) > 0 && !c.Force {
		return fmt.Errorf("column still holds %d task(s), pass --force to delete anyway", len(tasks))
	}

	if err := ctx.Store.DeleteColumn(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted column %s and %d task(s)\n", c.ID, len(tasks))
	return nil
}
