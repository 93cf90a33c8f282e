package timer

import (
	"math/rand"
	"time"

	"github.com/tmalley/focusboard/internal/models"
)

// Scheduler decides when a micro-break should preempt a work period.
// It draws a randomized delay within the configured jitter window and
// survives pauses without drift: while running the absolute deadline is
// authoritative, while paused only the relative remaining duration is
// kept, so wall-clock time spent paused never counts against the window.
type Scheduler struct {
	rng *rand.Rand

	deadline     time.Time     // zero unless a micro-break is scheduled and running
	remaining    time.Duration // valid only while hasRemaining
	hasRemaining bool
}

// NewScheduler creates a scheduler drawing from the given source.
// A nil rng falls back to a time-seeded source.
func NewScheduler(rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scheduler{rng: rng}
}

// ScheduleNext draws the next micro-break deadline. With micro-breaks
// disabled the schedule stays empty. Inverted interval bounds are
// normalized by swapping, and a collapsed window (min == max) makes
// the draw deterministic.
func (s *Scheduler) ScheduleNext(settings models.Settings, now time.Time) {
	s.Clear()
	if !settings.EnableMicroBreaks {
		return
	}

	minSec := settings.MicroBreakMinInterval * 60
	maxSec := settings.MicroBreakMaxInterval * 60
	if minSec > maxSec {
		minSec, maxSec = maxSec, minSec
	}

	delaySec := minSec
	if maxSec > minSec {
		delaySec = minSec + s.rng.Intn(maxSec-minSec+1)
	}

	s.deadline = now.Add(time.Duration(delaySec) * time.Second)
}

// Pause converts the absolute deadline into a relative remaining duration.
func (s *Scheduler) Pause(now time.Time) {
	if s.deadline.IsZero() {
		return
	}
	remaining := s.deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	s.remaining = remaining
	s.hasRemaining = true
	s.deadline = time.Time{}
}

// Resume re-anchors a paused schedule at the current time.
func (s *Scheduler) Resume(now time.Time) {
	if !s.hasRemaining {
		return
	}
	s.deadline = now.Add(s.remaining)
	s.remaining = 0
	s.hasRemaining = false
}

// Due reports whether a scheduled micro-break deadline has passed.
func (s *Scheduler) Due(now time.Time) bool {
	return !s.deadline.IsZero() && !now.Before(s.deadline)
}

// Scheduled reports whether an absolute deadline is set.
func (s *Scheduler) Scheduled() bool {
	return !s.deadline.IsZero()
}

// Pending reports whether a paused remaining duration is held.
func (s *Scheduler) Pending() bool {
	return s.hasRemaining
}

// Remaining returns the held relative duration. Only meaningful while
// Pending reports true.
func (s *Scheduler) Remaining() time.Duration {
	return s.remaining
}

// Deadline returns the absolute deadline. Zero unless Scheduled.
func (s *Scheduler) Deadline() time.Time {
	return s.deadline
}

// Clear empties the schedule entirely.
func (s *Scheduler) Clear() {
	s.deadline = time.Time{}
	s.remaining = 0
	s.hasRemaining = false
}
