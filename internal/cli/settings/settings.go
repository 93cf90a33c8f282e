package settings

import (
	"fmt"
	"sort"

	"github.com/tmalley/focusboard/internal/cli"
	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/models"
	"github.com/tmalley/focusboard/internal/validation"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	values := models.SettingsToMap(settings)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%-26s %s\n", key, values[key])
	}
	return nil
}

type SetCmd struct {
	Key   string `arg:"" help:"Setting key, as shown by 'settings show'."`
	Value string `arg:"" help:"New value."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	current, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	values := models.SettingsToMap(current)
	if _, ok := values[c.Key]; !ok {
		return fmt.Errorf("unknown setting %q", c.Key)
	}
	values[c.Key] = c.Value

	updated, err := models.MapToSettings(values)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", c.Key, err)
	}
	if err := validation.ValidateSettings(updated); err != nil {
		return fmt.Errorf("invalid value for %s: %w", c.Key, err)
	}

	if err := ctx.Store.SaveSettings(updated); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}

type ResetCmd struct {
	Force bool `short:"f" help:"Reset without confirmation."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Force {
		return fmt.Errorf("pass --force to reset all settings to defaults")
	}

	ctx.PerformAutomaticBackup()

	defaults := models.DefaultSettings()
	if err := ctx.Store.SaveSettings(defaults); err != nil {
		return err
	}

	fmt.Printf("Settings reset to defaults (%d minute work, %d minute break)\n",
		constants.DefaultWorkMinutes, constants.DefaultBreakMinutes)
	return nil
}
