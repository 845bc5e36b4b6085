package store

import (
	"sync"

	"github.com/drumst0ck/koi-calendar/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the current fetch cycle in
// memory. Row order is preserved because display order derives from it.
type MemoryStore struct {
	mu      sync.RWMutex
	matches []domain.Match
	byID    map[int]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[int]int)}
}

// ListMatches returns a copy of the current snapshot in row order.
func (s *MemoryStore) ListMatches() []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Match, len(s.matches))
	copy(result, s.matches)
	return result
}

// GetMatch retrieves a match by record id.
func (s *MemoryStore) GetMatch(id int) (domain.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return domain.Match{}, false
	}
	return s.matches[idx], true
}

// SetMatches replaces the snapshot in full. The previous cycle's records are
// discarded; there is no merge.
func (s *MemoryStore) SetMatches(matches []domain.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = make([]domain.Match, len(matches))
	copy(s.matches, matches)
	s.byID = make(map[int]int, len(matches))
	for i, m := range s.matches {
		s.byID[m.ID] = i
	}
}
