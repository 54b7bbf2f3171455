package usecase

import "sync"

// cardLocks serializes mutating operations per job card identity. Every
// mutation is read-modify-write over the same aggregate, so two concurrent
// calls on one card must not interleave; different cards stay independent.
//
// Locks are never released from the map: the working set is bounded by the
// number of cards a single instance actively touches.
//
// All use cases mutate the same aggregates, so they all go through
// sharedCardLocks: a per-use-case registry would let a work-session write and
// a review decision on the same card race each other.
type cardLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

var sharedCardLocks = newCardLocks()

func newCardLocks() *cardLocks {
	return &cardLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the card and returns the unlock function.
func (l *cardLocks) acquire(cardID string) func() {
	l.mu.Lock()
	m, ok := l.locks[cardID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[cardID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
