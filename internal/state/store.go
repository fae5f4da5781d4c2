package state

import (
	"sync"

	"github.com/rileyhilliard/indicate/internal/protocol"
)

// Store guards the DisplayState shared between the feeder and the render
// tick. The lock is held only for a single Apply or a struct copy.
type Store struct {
	mu      sync.Mutex
	state   DisplayState
	applied uint64
}

// NewStore takes ownership of initial.
func NewStore(initial DisplayState) *Store {
	return &Store{state: initial}
}

// Apply applies one command atomically with respect to Snapshot.
func (s *Store) Apply(cmd protocol.Command) {
	s.mu.Lock()
	s.state.Apply(cmd)
	s.applied++
	s.mu.Unlock()
}

// Snapshot returns a copy of the current state. DisplayState holds only
// values and immutable strings, so the copy shares nothing mutable.
func (s *Store) Snapshot() DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Applied returns how many commands have gone through Apply.
func (s *Store) Applied() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}
