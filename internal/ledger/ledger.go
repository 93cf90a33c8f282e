package ledger

import (
	"sync"

	"github.com/tmalley/focusboard/internal/logger"
)

// Recorder is the persistence sink for accumulated work seconds.
// The sqlite store satisfies it.
type Recorder interface {
	AddWorkSeconds(date string, seconds int) error
}

// Ledger accumulates elapsed work seconds per local calendar day.
// Add is called once per active work tick and must stay cheap, so
// seconds are buffered in memory and written through in batches.
// Records are only ever created and incremented, never removed.
type Ledger struct {
	mu       sync.Mutex
	recorder Recorder
	pending  map[string]int
}

// New creates a ledger writing through to the given recorder.
// A nil recorder keeps the ledger purely in-memory.
func New(recorder Recorder) *Ledger {
	return &Ledger{
		recorder: recorder,
		pending:  make(map[string]int),
	}
}

// Add buffers seconds worked for the given date. The record for a new
// date springs into existence on its first increment.
func (l *Ledger) Add(date string, seconds int) {
	if seconds <= 0 {
		return
	}
	l.mu.Lock()
	l.pending[date] += seconds
	l.mu.Unlock()
}

// Pending returns the not-yet-flushed seconds for a date.
func (l *Ledger) Pending(date string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending[date]
}

// Flush writes all buffered seconds through to the recorder. A failed
// write keeps that date's seconds buffered for the next flush; flushing
// never corrupts what was already persisted because the recorder
// operation is additive.
func (l *Ledger) Flush() {
	l.mu.Lock()
	pending := l.pending
	l.pending = make(map[string]int)
	l.mu.Unlock()

	if l.recorder == nil {
		return
	}

	for date, seconds := range pending {
		if err := l.recorder.AddWorkSeconds(date, seconds); err != nil {
			logger.Warn("Failed to flush work seconds", "date", date, "seconds", seconds, "error", err)
			l.mu.Lock()
			l.pending[date] += seconds
			l.mu.Unlock()
		}
	}
}
