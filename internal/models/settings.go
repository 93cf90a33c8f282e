package models

// Settings represents application-wide settings
type Settings struct {
	WorkMinutes           int     `json:"work_minutes"`             // length of a work period in minutes
	BreakMinutes          int     `json:"break_minutes"`            // length of a short break in minutes
	MicroBreakSeconds     int     `json:"micro_break_seconds"`      // length of a micro-break in seconds
	MicroBreakMinInterval int     `json:"micro_break_min_interval"` // lower jitter bound between micro-breaks in minutes
	MicroBreakMaxInterval int     `json:"micro_break_max_interval"` // upper jitter bound between micro-breaks in minutes
	EnableMicroBreaks     bool    `json:"enable_micro_breaks"`      // whether micro-breaks interrupt work periods
	AutoStartWork         bool    `json:"auto_start_work"`          // whether work starts counting down when a break ends
	AutoStartBreak        bool    `json:"auto_start_break"`         // whether a break starts counting down when work ends
	ToneVolume            int     `json:"tone_volume"`              // cue tone volume, 0-100
	BackgroundVolume      int     `json:"background_volume"`        // break background audio volume, 0-100
	CustomSoundPath       string  `json:"custom_sound_path"`        // optional sound file used instead of the synthesized tone
	ThemeColor            string  `json:"theme_color"`              // accent color as a hex string
	DarkMode              bool    `json:"dark_mode"`                // whether the dark palette is used
	UIScale               float64 `json:"ui_scale"`                 // UI scale factor, 0.5-1.0
}
