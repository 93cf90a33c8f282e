package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/cli/archives"
	"github.com/tmalley/focusboard/internal/cli/backups"
	"github.com/tmalley/focusboard/internal/cli/columns"
	"github.com/tmalley/focusboard/internal/cli/report"
	"github.com/tmalley/focusboard/internal/cli/settings"
	"github.com/tmalley/focusboard/internal/cli/system"
	"github.com/tmalley/focusboard/internal/cli/tasks"
	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/errors"
	"github.com/tmalley/focusboard/internal/logger"
	"github.com/tmalley/focusboard/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/focusboard/focusboard.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize focusboard storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive timer and board." default:"1"`
	Task    struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks by column."`
		Done   tasks.TaskDoneCmd   `cmd:"" help:"Mark a task completed."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit a task's text."`
		Move   tasks.TaskMoveCmd   `cmd:"" help:"Move a task to another column."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
		Prune  tasks.TaskPruneCmd  `cmd:"" help:"Remove old completed tasks."`
	} `cmd:"" help:"Manage tasks."`
	Column struct {
		Add    columns.ColumnAddCmd    `cmd:"" help:"Add a board column."`
		List   columns.ColumnListCmd   `cmd:"" help:"List board columns." default:"1"`
		Rename columns.ColumnRenameCmd `cmd:"" help:"Rename a column."`
		Delete columns.ColumnDeleteCmd `cmd:"" help:"Delete a column and its tasks."`
	} `cmd:"" help:"Manage board columns."`
	Stats   report.StatsCmd `cmd:"" help:"Show daily focus statistics."`
	Archive struct {
		Export archives.ExportCmd `cmd:"" help:"Export completed tasks to a markdown archive."`
		Import archives.ImportCmd `cmd:"" help:"Import tasks from a markdown archive."`
	} `cmd:"" help:"Export and import the markdown archive."`
	Settings struct {
		Show  settings.ShowCmd  `cmd:"" help:"Show all settings." default:"1"`
		Set   settings.SetCmd   `cmd:"" help:"Change a setting."`
		Reset settings.ResetCmd `cmd:"" help:"Reset all settings to defaults."`
	} `cmd:"" help:"Manage application settings."`
	Backup struct {
		Create  backups.CreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.ListCmd    `cmd:"" help:"List available backups."`
		Restore backups.RestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Focus timer with a kanban board and daily statistics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	store := storage.NewSQLiteStore(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	// Load the store before running the command (init handles its own loading)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
