package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/migration"
	"github.com/tmalley/focusboard/migrations"
)

type MigrateCmd struct {
	Status bool `help:"Only report the current schema version, do not migrate."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	db, err := sql.Open("sqlite", ctx.Store.GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(db, subFS)

	if c.Status {
		current, err := runner.GetCurrentVersion()
		if err != nil {
			return err
		}
		latest, err := runner.GetLatestVersion()
		if err != nil {
			return err
		}
		fmt.Printf("Schema version: %d (latest: %d)\n", current, latest)
		return nil
	}

	ctx.PerformAutomaticBackup()

	applied, err := runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}
	if applied == 0 {
		fmt.Println("Nothing to do.")
	}
	return nil
}
