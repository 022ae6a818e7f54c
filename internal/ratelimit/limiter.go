package ratelimit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Limiter enforces a sliding-window budget of case operations per character.
type Limiter interface {
	// Allow reports whether the character has budget left in the current
	// window. It does not consume budget.
	Allow(characterID uuid.UUID) bool

	// Record consumes one unit of budget for the character.
	Record(characterID uuid.UUID)

	// Reset clears the character's window (admin/testing).
	Reset(characterID uuid.UUID)
}

type slidingWindow struct {
	mu      sync.Mutex
	window  time.Duration
	maxOps  int
	entries map[uuid.UUID][]time.Time
	now     func() time.Time
}

// NewSlidingWindow builds a limiter allowing maxOps operations per window
// per character.
func NewSlidingWindow(window time.Duration, maxOps int) Limiter {
	return &slidingWindow{
		window:  window,
		maxOps:  maxOps,
		entries: make(map[uuid.UUID][]time.Time),
		now:     time.Now,
	}
}

func (l *slidingWindow) Allow(characterID uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.prune(characterID)) < l.maxOps
}

func (l *slidingWindow) Record(characterID uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[characterID] = append(l.prune(characterID), l.now())
}

func (l *slidingWindow) Reset(characterID uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, characterID)
}

// prune drops timestamps that fell out of the window and stores the compacted
// slice back. Caller must hold the mutex.
func (l *slidingWindow) prune(characterID uuid.UUID) []time.Time {
	cutoff := l.now().Add(-l.window)
	stamps := l.entries[characterID]

	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) == 0 {
		delete(l.entries, characterID)
		return nil
	}
	l.entries[characterID] = kept
	return kept
}
