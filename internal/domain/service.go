package domain

// Store defines the contract for holding and retrieving the current
// match snapshot.
type Store interface {
	ListMatches() []Match
	GetMatch(id int) (Match, bool)
	SetMatches(matches []Match)
}

// Service coordinates domain operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Matches returns the current set of matches in row order.
func (s *Service) Matches() []Match {
	return s.store.ListMatches()
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id int) (Match, bool) {
	return s.store.GetMatch(id)
}

// ReplaceMatches swaps the in-memory snapshot with a new fetch cycle's result.
func (s *Service) ReplaceMatches(matches []Match) {
	s.store.SetMatches(matches)
}
