// Package teststubs holds shared test doubles for the provider seam.
package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/drumst0ck/koi-calendar/internal/domain"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	Matches []domain.Match
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchMatches returns the configured matches and error while tracking calls.
func (s *StubProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Matches, s.Err
}

// Name identifies the stub in logs and metrics.
func (s *StubProvider) Name() string { return "stub" }

// StubSink records snapshot replacements for verification in tests.
type StubSink struct {
	Replaced [][]domain.Match
}

// ReplaceMatches appends the snapshot to the replacement history.
func (s *StubSink) ReplaceMatches(matches []domain.Match) {
	s.Replaced = append(s.Replaced, matches)
}
