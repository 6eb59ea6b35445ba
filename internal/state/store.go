package state

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Snapshot is the latest followed output available to the UI.
type Snapshot struct {
	Lines               []string
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive read failures
}

// IsStale returns true when the source has failed to read several times in a row.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored lines and reports whether they changed. When err
// is non-nil the previous lines are kept but the error is recorded.
func (s *Store) Update(lines []string, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return false
	}

	changed := !slices.Equal(s.snapshot.Lines, lines)
	if changed {
		s.snapshot.Lines = slices.Clone(lines)
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	return changed
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Lines = slices.Clone(s.snapshot.Lines)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
