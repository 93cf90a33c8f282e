package models

import (
	"testing"

	"github.com/tmalley/focusboard/internal/constants"
)

func TestSettingsMapRoundtrip(t *testing.T) {
	settings := Settings{
		WorkMinutes:           50,
		BreakMinutes:          10,
		MicroBreakSeconds:     20,
		MicroBreakMinInterval: 5,
		MicroBreakMaxInterval: 15,
		EnableMicroBreaks:     true,
		AutoStartWork:         true,
		AutoStartBreak:        false,
		ToneVolume:            55,
		BackgroundVolume:      30,
		CustomSoundPath:       "/tmp/chime.wav",
		ThemeColor:            "#FF0000",
		DarkMode:              false,
		UIScale:               0.75,
	}

	got, err := MapToSettings(SettingsToMap(settings))
	if err != nil {
		t.Fatalf("MapToSettings() failed: %v", err)
	}
	if got != settings {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", got, settings)
	}
}

func TestMapToSettingsBadValue(t *testing.T) {
	data := SettingsToMap(DefaultSettings())
	data[constants.SettingWorkMinutes] = "lots"

	if _, err := MapToSettings(data); err == nil {
		t.Error("MapToSettings() with a non-numeric value returned nil error")
	}
}

func TestMapToSettingsIgnoresUnknownKeys(t *testing.T) {
	data := SettingsToMap(DefaultSettings())
	data["future_setting"] = "whatever"

	got, err := MapToSettings(data)
	if err != nil {
		t.Fatalf("MapToSettings() failed: %v", err)
	}
	if got != DefaultSettings() {
		t.Errorf("unknown key changed the result: %+v", got)
	}
}

func TestMergeDefaultSettingsFillsMissingKeys(t *testing.T) {
	merged := MergeDefaultSettings(map[string]string{})

	settings, err := MapToSettings(merged)
	if err != nil {
		t.Fatalf("MapToSettings() failed: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("merged empty record = %+v, want defaults %+v", settings, DefaultSettings())
	}
}

func TestMergeDefaultSettingsKeepsExplicitValues(t *testing.T) {
	merged := MergeDefaultSettings(map[string]string{
		constants.SettingWorkMinutes: "45",
		constants.SettingThemeColor:  "#123456",
	})

	settings, err := MapToSettings(merged)
	if err != nil {
		t.Fatalf("MapToSettings() failed: %v", err)
	}
	if settings.WorkMinutes != 45 {
		t.Errorf("WorkMinutes = %d, want untouched 45", settings.WorkMinutes)
	}
	if settings.ThemeColor != "#123456" {
		t.Errorf("ThemeColor = %q, want untouched", settings.ThemeColor)
	}
	if settings.BreakMinutes != constants.DefaultBreakMinutes {
		t.Errorf("BreakMinutes = %d, want filled default %d", settings.BreakMinutes, constants.DefaultBreakMinutes)
	}
}

func TestMergeDefaultSettingsKeepsMutedVolume(t *testing.T) {
	muted := DefaultSettings()
	muted.ToneVolume = 0
	muted.BackgroundVolume = 0

	settings, err := MapToSettings(MergeDefaultSettings(SettingsToMap(muted)))
	if err != nil {
		t.Fatalf("MapToSettings() failed: %v", err)
	}
	if settings.ToneVolume != 0 {
		t.Errorf("ToneVolume = %d after reload, want muted 0", settings.ToneVolume)
	}
	if settings.BackgroundVolume != 0 {
		t.Errorf("BackgroundVolume = %d after reload, want muted 0", settings.BackgroundVolume)
	}
}

func TestTaskValidate(t *testing.T) {
	completedAt := "2026-08-24T10:00:00Z"
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{"valid", Task{ID: "1", Text: "a", ColumnID: "c"}, false},
		{"missing id", Task{Text: "a", ColumnID: "c"}, true},
		{"missing text", Task{ID: "1", ColumnID: "c"}, true},
		{"missing column", Task{ID: "1", Text: "a"}, true},
		{"completed with timestamp", Task{ID: "1", Text: "a", ColumnID: "c", Completed: true, CompletedAt: &completedAt}, false},
		{"completed without timestamp", Task{ID: "1", Text: "a", ColumnID: "c", Completed: true}, true},
		{"timestamp without completed", Task{ID: "1", Text: "a", ColumnID: "c", CompletedAt: &completedAt}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.task.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
