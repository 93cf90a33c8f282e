package timer

import (
	"math/rand"
	"sync"
	"time"

	"github.com/tmalley/focusboard/internal/constants"
	"github.com/tmalley/focusboard/internal/models"
)

// Audio is the cue and background audio collaborator. Implementations
// must not block and must swallow playback failures; a transition never
// depends on audio succeeding.
type Audio interface {
	PlayTone(kind ToneKind, volume int)
	StopTone()
	StartBackground(kind ToneKind, volume int)
	StopBackground()
}

// Ledger receives elapsed work seconds keyed by local calendar date.
type Ledger interface {
	Add(date string, seconds int)
}

// Snapshot is the externally observable timer state.
type Snapshot struct {
	Mode      Mode
	Remaining int // seconds
	Active    bool
	Overlay   bool // micro-break overlay visible
}

// Config contains the machine's collaborators and test seams.
type Config struct {
	Audio  Audio
	Ledger Ledger
	Rand   *rand.Rand       // scheduler jitter source; nil for time-seeded
	Now    func() time.Time // clock; nil for time.Now
}

// Machine is the timer state machine. It owns the mode, the countdown,
// the active flag and the work snapshot taken when a micro-break
// preempts, and it drives the micro-break scheduler and the work-time
// ledger. All methods are safe for concurrent use; in practice a single
// 1-second tick source drives it and transitions within one tick are
// applied atomically with respect to observers.
type Machine struct {
	mu       sync.Mutex
	settings models.Settings
	sched    *Scheduler
	audio    Audio
	ledger   Ledger
	now      func() time.Time

	mode        Mode
	remaining   int // seconds left in the current mode
	active      bool
	snapshot    int // work seconds saved across a micro-break preemption
	hasSnapshot bool
	overlay     bool
}

// New creates a paused machine in work mode.
func New(settings models.Settings, cfg Config) *Machine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Machine{
		settings:  settings,
		sched:     NewScheduler(cfg.Rand),
		audio:     cfg.Audio,
		ledger:    cfg.Ledger,
		now:       cfg.Now,
		mode:      ModeWork,
		remaining: DurationFor(ModeWork, settings),
	}
}

// State returns the observable timer state.
func (m *Machine) State() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Mode:      m.mode,
		Remaining: m.remaining,
		Active:    m.active,
		Overlay:   m.overlay,
	}
}

// Settings returns the settings the machine currently runs on.
func (m *Machine) Settings() models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// Tick advances the active countdown by one second. While working it
// logs the elapsed second to the ledger and may preempt into a
// micro-break when the scheduler's deadline has passed. A countdown
// reaching zero completes the current mode.
func (m *Machine) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}

	now := m.now()
	if m.remaining > 0 {
		m.remaining--
	}

	if m.mode == ModeWork && m.ledger != nil {
		m.ledger.Add(now.Format(constants.DateFormat), 1)
	}

	if m.remaining <= 0 {
		m.completeModeLocked(now)
		return
	}

	if m.mode == ModeWork && m.settings.EnableMicroBreaks && m.sched.Due(now) {
		m.enterMicroBreakLocked()
	}
}

// Toggle flips between counting down and paused.
func (m *Machine) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.active {
		m.active = false
		if m.mode == ModeWork {
			m.sched.Pause(now)
		}
		return
	}

	m.active = true
	m.playTone(ToneTick)
	if m.mode == ModeWork {
		switch {
		case m.sched.Pending():
			m.sched.Resume(now)
		case !m.sched.Scheduled():
			m.sched.ScheduleNext(m.settings, now)
		}
	}
}

// Reset returns the machine to a paused work period of full length,
// dropping any snapshot, schedule and overlay.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mode = ModeWork
	m.remaining = DurationFor(ModeWork, m.settings)
	m.active = false
	m.snapshot = 0
	m.hasSnapshot = false
	m.overlay = false
	m.sched.Clear()
	m.stopAudio()
}

// SkipMicroBreak ends a running micro-break early. Outside of a
// micro-break it does nothing.
func (m *Machine) SkipMicroBreak() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.mode != ModeMicroBreak {
		return
	}
	m.resumeWorkFromMicroBreakLocked(m.now())
}

// ApplySettings installs a new settings record. Disabling micro-breaks
// immediately neutralizes any pending schedule. When the duration of
// the current mode changed, the countdown is reset to the new duration
// and the machine is force-paused so the running countdown never jumps.
func (m *Machine) ApplySettings(settings models.Settings) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldDuration := DurationFor(m.mode, m.settings)
	newDuration := DurationFor(m.mode, settings)
	m.settings = settings

	if !settings.EnableMicroBreaks {
		m.sched.Clear()
	}

	if oldDuration != newDuration {
		m.remaining = newDuration
		if m.active {
			m.active = false
			if m.mode == ModeWork {
				m.sched.Pause(m.now())
			}
		}
	}
}

// completeModeLocked handles a countdown reaching zero.
func (m *Machine) completeModeLocked(now time.Time) {
	switch m.mode {
	case ModeWork:
		m.stopBackground()
		m.playTone(ToneRelax)
		m.mode = ModeShortBreak
		m.remaining = DurationFor(ModeShortBreak, m.settings)
		m.active = m.settings.AutoStartBreak
		m.sched.Clear()
		if m.active {
			m.startBackground(ToneRelax)
		}
	case ModeShortBreak:
		m.stopBackground()
		m.playTone(ToneStart)
		m.mode = ModeWork
		m.remaining = DurationFor(ModeWork, m.settings)
		m.active = m.settings.AutoStartWork
		if m.active {
			m.sched.ScheduleNext(m.settings, now)
		} else {
			m.sched.Clear()
		}
	case ModeMicroBreak:
		m.resumeWorkFromMicroBreakLocked(now)
	}
}

// enterMicroBreakLocked preempts a running work period. The remaining
// work time is snapshotted and restored when the micro-break ends.
func (m *Machine) enterMicroBreakLocked() {
	m.snapshot = m.remaining
	m.hasSnapshot = true
	m.sched.Clear()
	m.mode = ModeMicroBreak
	m.remaining = DurationFor(ModeMicroBreak, m.settings)
	m.active = true
	m.overlay = true
	m.playTone(ToneAlarm)
}

// resumeWorkFromMicroBreakLocked restores the snapshotted work time.
// Resumption is always immediate regardless of the auto-start setting:
// a micro-break is a system-initiated interruption, not a break the
// user chose to take.
func (m *Machine) resumeWorkFromMicroBreakLocked(now time.Time) {
	m.mode = ModeWork
	if m.hasSnapshot {
		m.remaining = m.snapshot
	} else {
		m.remaining = DurationFor(ModeWork, m.settings)
	}
	m.snapshot = 0
	m.hasSnapshot = false
	m.overlay = false
	m.active = true
	m.sched.ScheduleNext(m.settings, now)
}

func (m *Machine) playTone(kind ToneKind) {
	if m.audio != nil {
		m.audio.PlayTone(kind, m.settings.ToneVolume)
	}
}

func (m *Machine) startBackground(kind ToneKind) {
	if m.audio != nil {
		m.audio.StartBackground(kind, m.settings.BackgroundVolume)
	}
}

func (m *Machine) stopBackground() {
	if m.audio != nil {
		m.audio.StopBackground()
	}
}

func (m *Machine) stopAudio() {
	if m.audio != nil {
		m.audio.StopBackground()
		m.audio.StopTone()
	}
}
