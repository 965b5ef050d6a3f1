package gesture

import (
	"sync"

	"github.com/vovakirdan/gesnake/internal/core"
)

// Shared is the single handoff between the capture loop and the game loop:
// the most recent real gesture, guarded by a mutex. GestureNone never
// overwrites it, so the last pose keeps steering until a new one is seen.
type Shared struct {
	mu      sync.Mutex
	latest  core.Gesture
	changes int
}

// NewShared creates an empty handoff.
func NewShared() *Shared {
	return &Shared{}
}

// Set records a gesture. It reports whether the stored value changed.
func (s *Shared) Set(g core.Gesture) bool {
	if g == core.GestureNone {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.latest == g {
		return false
	}
	s.latest = g
	s.changes++
	return true
}

// Latest returns the most recent gesture, or GestureNone if none was seen
// since the last Reset.
func (s *Shared) Latest() core.Gesture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Changes returns how many times the stored gesture changed since Reset.
func (s *Shared) Changes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changes
}

// Reset forgets the stored gesture, so a new round starts straight.
func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = core.GestureNone
	s.changes = 0
}
