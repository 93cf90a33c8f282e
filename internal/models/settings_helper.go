package models

import (
	"fmt"

	"github.com/tmalley/focusboard/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingWorkMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.WorkMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing work_minutes: %w", err)
			}
		case constants.SettingBreakMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.BreakMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing break_minutes: %w", err)
			}
		case constants.SettingMicroBreakSeconds:
			if _, err := fmt.Sscanf(value, "%d", &settings.MicroBreakSeconds); err != nil {
				return Settings{}, fmt.Errorf("parsing micro_break_seconds: %w", err)
			}
		case constants.SettingMicroBreakMinInterval:
			if _, err := fmt.Sscanf(value, "%d", &settings.MicroBreakMinInterval); err != nil {
				return Settings{}, fmt.Errorf("parsing micro_break_min_interval: %w", err)
			}
		case constants.SettingMicroBreakMaxInterval:
			if _, err := fmt.Sscanf(value, "%d", &settings.MicroBreakMaxInterval); err != nil {
				return Settings{}, fmt.Errorf("parsing micro_break_max_interval: %w", err)
			}
		case constants.SettingEnableMicroBreaks:
			settings.EnableMicroBreaks = value == "true"
		case constants.SettingAutoStartWork:
			settings.AutoStartWork = value == "true"
		case constants.SettingAutoStartBreak:
			settings.AutoStartBreak = value == "true"
		case constants.SettingToneVolume:
			if _, err := fmt.Sscanf(value, "%d", &settings.ToneVolume); err != nil {
				return Settings{}, fmt.Errorf("parsing tone_volume: %w", err)
			}
		case constants.SettingBackgroundVolume:
			if _, err := fmt.Sscanf(value, "%d", &settings.BackgroundVolume); err != nil {
				return Settings{}, fmt.Errorf("parsing background_volume: %w", err)
			}
		case constants.SettingCustomSoundPath:
			settings.CustomSoundPath = value
		case constants.SettingThemeColor:
			settings.ThemeColor = value
		case constants.SettingDarkMode:
			settings.DarkMode = value == "true"
		case constants.SettingUIScale:
			if _, err := fmt.Sscanf(value, "%g", &settings.UIScale); err != nil {
				return Settings{}, fmt.Errorf("parsing ui_scale: %w", err)
			}
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingWorkMinutes:           fmt.Sprintf("%d", settings.WorkMinutes),
		constants.SettingBreakMinutes:          fmt.Sprintf("%d", settings.BreakMinutes),
		constants.SettingMicroBreakSeconds:     fmt.Sprintf("%d", settings.MicroBreakSeconds),
		constants.SettingMicroBreakMinInterval: fmt.Sprintf("%d", settings.MicroBreakMinInterval),
		constants.SettingMicroBreakMaxInterval: fmt.Sprintf("%d", settings.MicroBreakMaxInterval),
		constants.SettingEnableMicroBreaks:     fmt.Sprintf("%v", settings.EnableMicroBreaks),
		constants.SettingAutoStartWork:         fmt.Sprintf("%v", settings.AutoStartWork),
		constants.SettingAutoStartBreak:        fmt.Sprintf("%v", settings.AutoStartBreak),
		constants.SettingToneVolume:            fmt.Sprintf("%d", settings.ToneVolume),
		constants.SettingBackgroundVolume:      fmt.Sprintf("%d", settings.BackgroundVolume),
		constants.SettingCustomSoundPath:       settings.CustomSoundPath,
		constants.SettingThemeColor:            settings.ThemeColor,
		constants.SettingDarkMode:              fmt.Sprintf("%v", settings.DarkMode),
		constants.SettingUIScale:               fmt.Sprintf("%g", settings.UIScale),
	}
}

// DefaultSettings returns a complete settings record with every field populated.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:           constants.DefaultWorkMinutes,
		BreakMinutes:          constants.DefaultBreakMinutes,
		MicroBreakSeconds:     constants.DefaultMicroBreakSeconds,
		MicroBreakMinInterval: constants.DefaultMicroBreakMinInterval,
		MicroBreakMaxInterval: constants.DefaultMicroBreakMaxInterval,
		EnableMicroBreaks:     constants.DefaultEnableMicroBreaks,
		AutoStartWork:         constants.DefaultAutoStartWork,
		AutoStartBreak:        constants.DefaultAutoStartBreak,
		ToneVolume:            constants.DefaultToneVolume,
		BackgroundVolume:      constants.DefaultBackgroundVolume,
		ThemeColor:            constants.DefaultThemeColor,
		DarkMode:              constants.DefaultDarkMode,
		UIScale:               constants.DefaultUIScale,
	}
}

// MergeDefaultSettings fills keys absent from a loaded key/value record
// with their defaults. The merge happens before parsing so a stored
// zero (a muted volume, say) is kept as an explicit value rather than
// mistaken for a missing field.
func MergeDefaultSettings(data map[string]string) map[string]string {
	merged := SettingsToMap(DefaultSettings())
	for key, value := range data {
		merged[key] = value
	}
	return merged
}
