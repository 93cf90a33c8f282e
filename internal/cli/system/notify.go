package system

import (
	"time"

	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/logger"
	"github.com/tmalley/focusboard/internal/notifier"
)

// NotifyCmd sends a notification through the tray application. Used
// internally and for troubleshooting the tray connection.
type NotifyCmd struct {
	Text string `arg:"" help:"Notification text."`
	Kind string `help:"Notification kind (break_start|break_end|micro_break)." default:"break_start"`
}

func (c *NotifyCmd) Run() error {
	n := notifier.New()

	var err error
	for attempt := 1; attempt <= constants.NotifyMaxRetries; attempt++ {
		err = n.Notify(notifier.Kind(c.Kind), c.Text)
		if err == nil {
			return nil
		}
		logger.Debug("Notification attempt failed", "attempt", attempt, "error", err)
		time.Sleep(constants.NotifyRetryDelay)
	}
	return err
}
