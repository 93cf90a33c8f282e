// Package validation checks settings, tasks and columns before they
// reach the store or the timer.
package validation

import (
	"fmt"
	"strings"

	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/models"
)

// ValidateSettings checks every field range. The micro-break interval
// bounds are allowed to be inverted here; the scheduler normalizes them
// by swapping, so only non-positive values are rejected.
func ValidateSettings(settings models.Settings) error {
	if settings.WorkMinutes <= 0 {
		return fmt.Errorf("work duration must be positive (got %d minutes)", settings.WorkMinutes)
	}
	if settings.BreakMinutes <= 0 {
		return fmt.Errorf("break duration must be positive (got %d minutes)", settings.BreakMinutes)
	}
	if settings.MicroBreakSeconds <= 0 {
		return fmt.Errorf("micro-break duration must be positive (got %d seconds)", settings.MicroBreakSeconds)
	}
	if settings.MicroBreakMinInterval <= 0 || settings.MicroBreakMaxInterval <= 0 {
		return fmt.Errorf("micro-break interval bounds must be positive")
	}
	if settings.ToneVolume < 0 || settings.ToneVolume > 100 {
		return fmt.Errorf("tone volume must be between 0 and 100 (got %d)", settings.ToneVolume)
	}
	if settings.BackgroundVolume < 0 || settings.BackgroundVolume > 100 {
		return fmt.Errorf("background volume must be between 0 and 100 (got %d)", settings.BackgroundVolume)
	}
	if settings.UIScale < constants.MinUIScale || settings.UIScale > constants.MaxUIScale {
		return fmt.Errorf("ui scale must be between %g and %g (got %g)", constants.MinUIScale, constants.MaxUIScale, settings.UIScale)
	}
	if settings.ThemeColor != "" && !isHexColor(settings.ThemeColor) {
		return fmt.Errorf("theme color must be a hex color like #7D56F4 (got %q)", settings.ThemeColor)
	}
	return nil
}

// ValidateTask checks a task against its column set.
func ValidateTask(task models.Task, columns []models.Column) error {
	if err := task.Validate(); err != nil {
		return err
	}
	for _, c := range columns {
		if c.ID == task.ColumnID {
			return nil
		}
	}
	return fmt.Errorf("task %s references unknown column %s", task.ID, task.ColumnID)
}

// ValidateColumns checks a column set for duplicate titles.
func ValidateColumns(columns []models.Column) error {
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if err := c.Validate(); err != nil {
			return err
		}
		title := strings.ToLower(strings.TrimSpace(c.Title))
		if seen[title] {
			return fmt.Errorf("duplicate column title %q", c.Title)
		}
		seen[title] = true
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 7 && len(s) != 4 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
