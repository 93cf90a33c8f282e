package timer

import "github.com/tmalley/focusboard/internal/models"

// Mode represents the current timer phase.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeMicroBreak Mode = "micro_break"
)

// ToneKind identifies an audio cue.
type ToneKind string

const (
	ToneTick  ToneKind = "tick"
	ToneAlarm ToneKind = "alarm"
	ToneStart ToneKind = "start"
	ToneRelax ToneKind = "relax"
)

// DurationFor returns the configured duration of a mode in seconds.
// Work and short-break lengths are configured in minutes, micro-breaks
// directly in seconds. Settings are validated before they reach here.
func DurationFor(mode Mode, settings models.Settings) int {
	switch mode {
	case ModeWork:
		return settings.WorkMinutes * 60
	case ModeShortBreak:
		return settings.BreakMinutes * 60
	case ModeMicroBreak:
		return settings.MicroBreakSeconds
	}
	return 0
}
