package backups

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/tmalley/focusboard/internal/backup"
	"github.com/tmalley/focusboard/internal/cli"
)

type CreateCmd struct{}

func (c *CreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.BackupDir())
	for i, info := range backups {
		fmt.Printf("  %d. %s  %s  %.1f KB\n",
			i+1,
			filepath.Base(info.Path),
			info.Timestamp.Format("2006-01-02 15:04:05"),
			float64(info.Size)/1024)
	}
	return nil
}

// RestoreCmd replaces the database with a backup, selected by the index
// shown in 'backup list' or by file path.
type RestoreCmd struct {
	Backup string `arg:"" help:"Backup index from 'backup list' or a backup file path."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	path := c.Backup
	if index, err := strconv.Atoi(c.Backup); err == nil {
		backups, err := mgr.List()
		if err != nil {
			return err
		}
		if index < 1 || index > len(backups) {
			return fmt.Errorf("backup index %d out of range (1-%d)", index, len(backups))
		}
		path = backups[index-1].Path
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database before restore: %w", err)
	}

	if err := mgr.Restore(path); err != nil {
		return err
	}

	fmt.Printf("Restored database from %s\n", filepath.Base(path))
	return nil
}
