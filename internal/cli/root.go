package cli

import (
	"fmt"
	"time"

	"github.com/tmalley/focusboard/internal/backup"
	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/logger"
	"github.com/tmalley/focusboard/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.Create()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today returns the current local date in the application's date format.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// FormatMinutes formats a minute count as "2h 15m" or "45m".
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
