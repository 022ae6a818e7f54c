package ratelimit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(window time.Duration, maxOps int) (*slidingWindow, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := &slidingWindow{
		window:  window,
		maxOps:  maxOps,
		entries: make(map[uuid.UUID][]time.Time),
		now:     func() time.Time { return current },
	}
	return l, &current
}

func TestSlidingWindow_AllowsUpToBudget(t *testing.T) {
	l, _ := newTestLimiter(time.Second, 3)
	id := uuid.New()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(id), "op %d should be allowed", i)
		l.Record(id)
	}
	assert.False(t, l.Allow(id))
}

func TestSlidingWindow_BudgetRecoversAfterWindow(t *testing.T) {
	l, clock := newTestLimiter(time.Second, 2)
	id := uuid.New()

	l.Record(id)
	l.Record(id)
	assert.False(t, l.Allow(id))

	*clock = clock.Add(1100 * time.Millisecond)
	assert.True(t, l.Allow(id))
}

func TestSlidingWindow_PartialExpiry(t *testing.T) {
	l, clock := newTestLimiter(time.Second, 2)
	id := uuid.New()

	l.Record(id)
	*clock = clock.Add(600 * time.Millisecond)
	l.Record(id)
	assert.False(t, l.Allow(id))

	// First stamp expires, second is still inside the window.
	*clock = clock.Add(500 * time.Millisecond)
	assert.True(t, l.Allow(id))
	l.Record(id)
	assert.False(t, l.Allow(id))
}

func TestSlidingWindow_CharactersAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Second, 1)
	a, b := uuid.New(), uuid.New()

	l.Record(a)
	assert.False(t, l.Allow(a))
	assert.True(t, l.Allow(b))
}

func TestSlidingWindow_Reset(t *testing.T) {
	l, _ := newTestLimiter(time.Second, 1)
	id := uuid.New()

	l.Record(id)
	assert.False(t, l.Allow(id))
	l.Reset(id)
	assert.True(t, l.Allow(id))
}

func TestSlidingWindow_AllowDoesNotConsume(t *testing.T) {
	l, _ := newTestLimiter(time.Second, 1)
	id := uuid.New()

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(id))
	}
	l.Record(id)
	assert.False(t, l.Allow(id))
}
