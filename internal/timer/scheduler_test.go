package timer

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tmalley/focusboard/internal/models"
)

func schedulerSettings() models.Settings {
	return models.Settings{
		WorkMinutes:           25,
		BreakMinutes:          5,
		MicroBreakSeconds:     15,
		MicroBreakMinInterval: 8,
		MicroBreakMaxInterval: 12,
		EnableMicroBreaks:     true,
	}
}

func TestScheduleNextWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewScheduler(rng)
	settings := schedulerSettings()
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		s.ScheduleNext(settings, now)
		delay := s.Deadline().Sub(now)
		if delay < 8*time.Minute || delay > 12*time.Minute {
			t.Fatalf("draw %d: delay = %v, want within [8m, 12m]", i, delay)
		}
	}
}

func TestScheduleNextCollapsedWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewScheduler(rng)
	settings := schedulerSettings()
	settings.MicroBreakMinInterval = 10
	settings.MicroBreakMaxInterval = 10
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		s.ScheduleNext(settings, now)
		if delay := s.Deadline().Sub(now); delay != 10*time.Minute {
			t.Fatalf("draw %d: delay = %v, want exactly 10m", i, delay)
		}
	}
}

func TestScheduleNextInvertedBoundsSwap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewScheduler(rng)
	settings := schedulerSettings()
	settings.MicroBreakMinInterval = 12
	settings.MicroBreakMaxInterval = 8
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		s.ScheduleNext(settings, now)
		delay := s.Deadline().Sub(now)
		if delay < 8*time.Minute || delay > 12*time.Minute {
			t.Fatalf("draw %d: delay = %v, want within swapped [8m, 12m]", i, delay)
		}
	}
}

func TestScheduleNextDisabled(t *testing.T) {
	s := NewScheduler(rand.New(rand.NewSource(1)))
	settings := schedulerSettings()
	settings.EnableMicroBreaks = false
	now := time.Now()

	s.ScheduleNext(settings, now)
	if s.Scheduled() {
		t.Error("Scheduled() = true after scheduling with micro-breaks disabled")
	}
	if s.Due(now.Add(24 * time.Hour)) {
		t.Error("Due() = true with micro-breaks disabled")
	}
}

func TestPauseResumeNoDrift(t *testing.T) {
	s := NewScheduler(rand.New(rand.NewSource(1)))
	settings := schedulerSettings()
	settings.MicroBreakMinInterval = 10
	settings.MicroBreakMaxInterval = 10
	start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	s.ScheduleNext(settings, start)

	// 4 minutes elapse, then the timer pauses for an hour
	pausedAt := start.Add(4 * time.Minute)
	s.Pause(pausedAt)
	if !s.Pending() {
		t.Fatal("Pending() = false after Pause")
	}
	if got := s.Remaining(); got != 6*time.Minute {
		t.Fatalf("Remaining() = %v, want 6m", got)
	}

	resumedAt := pausedAt.Add(time.Hour)
	s.Resume(resumedAt)

	// The hour spent paused must not count against the window
	if s.Due(resumedAt.Add(5 * time.Minute)) {
		t.Error("Due() = true before the remaining 6 minutes elapsed")
	}
	if !s.Due(resumedAt.Add(6 * time.Minute)) {
		t.Error("Due() = false after the remaining 6 minutes elapsed")
	}
}

func TestPauseAfterDeadlinePassedClampsToZero(t *testing.T) {
	s := NewScheduler(rand.New(rand.NewSource(1)))
	settings := schedulerSettings()
	settings.MicroBreakMinInterval = 1
	settings.MicroBreakMaxInterval = 1
	start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	s.ScheduleNext(settings, start)
	s.Pause(start.Add(2 * time.Minute))

	if got := s.Remaining(); got != 0 {
		t.Fatalf("Remaining() = %v, want 0 for an overdue schedule", got)
	}

	resumedAt := start.Add(10 * time.Minute)
	s.Resume(resumedAt)
	if !s.Due(resumedAt) {
		t.Error("Due() = false immediately after resuming an overdue schedule")
	}
}

func TestClearEmptiesSchedule(t *testing.T) {
	s := NewScheduler(rand.New(rand.NewSource(1)))
	now := time.Now()
	s.ScheduleNext(schedulerSettings(), now)
	s.Clear()

	if s.Scheduled() || s.Pending() {
		t.Error("schedule not empty after Clear")
	}
	if s.Due(now.Add(24 * time.Hour)) {
		t.Error("Due() = true after Clear")
	}
}

func TestDueRequiresDeadline(t *testing.T) {
	s := NewScheduler(rand.New(rand.NewSource(1)))
	if s.Due(time.Now()) {
		t.Error("Due() = true on an empty scheduler")
	}
}
