package constants

import "time"

const (
	AppName           = "focusboard"
	Version           = "v0.3.1"
	DefaultConfigPath = "~/.config/focusboard/focusboard.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "focusboard-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "focusboard-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.tmalley.focusboard"
)
