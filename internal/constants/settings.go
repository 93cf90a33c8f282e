package constants

const (
	// Setting keys as stored in the settings table
	SettingWorkMinutes           = "work_minutes"
	SettingBreakMinutes          = "break_minutes"
	SettingMicroBreakSeconds     = "micro_break_seconds"
	SettingMicroBreakMinInterval = "micro_break_min_interval"
	SettingMicroBreakMaxInterval = "micro_break_max_interval"
	SettingEnableMicroBreaks     = "enable_micro_breaks"
	SettingAutoStartWork         = "auto_start_work"
	SettingAutoStartBreak        = "auto_start_break"
	SettingToneVolume            = "tone_volume"
	SettingBackgroundVolume      = "background_volume"
	SettingCustomSoundPath       = "custom_sound_path"
	SettingThemeColor            = "theme_color"
	SettingDarkMode              = "dark_mode"
	SettingUIScale               = "ui_scale"

	// Default setting values
	DefaultWorkMinutes           = 25
	DefaultBreakMinutes          = 5
	DefaultMicroBreakSeconds     = 15
	DefaultMicroBreakMinInterval = 8
	DefaultMicroBreakMaxInterval = 12
	DefaultEnableMicroBreaks     = true
	DefaultAutoStartWork         = false
	DefaultAutoStartBreak        = true
	DefaultToneVolume            = 70
	DefaultBackgroundVolume      = 40
	DefaultThemeColor            = "#7D56F4"
	DefaultDarkMode              = true
	DefaultUIScale               = 1.0

	// UI scale bounds
	MinUIScale = 0.5
	MaxUIScale = 1.0
)
