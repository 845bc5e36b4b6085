package providers

import (
	"context"
	"testing"
	"time"

	"github.com/drumst0ck/koi-calendar/internal/domain"
	"github.com/drumst0ck/koi-calendar/internal/metrics"
)

type staticProvider struct {
	matches []domain.Match
}

func (s *staticProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	_ = ctx
	return s.matches, nil
}

func (s *staticProvider) Name() string { return "static" }

func TestRateLimitedProviderWaitsForInterval(t *testing.T) {
	inner := &staticProvider{matches: []domain.Match{{ID: 1}}}
	rec := metrics.NewRecorder()
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil, rec)
	defer rl.(*rateLimitedProvider).Close()

	matches, err := rl.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("unexpected matches %+v", matches)
	}
	if rec.RateLimitHits("static") != 1 {
		t.Fatalf("expected one rate limit wait, got %d", rec.RateLimitHits("static"))
	}
}

func TestRateLimitedProviderHonorsContext(t *testing.T) {
	rl := NewRateLimitedProvider(&staticProvider{}, time.Hour, nil, nil)
	defer rl.(*rateLimitedProvider).Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchMatches(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRateLimitedProviderNilInner(t *testing.T) {
	rl := &rateLimitedProvider{}
	if _, err := rl.FetchMatches(context.Background()); err != ErrProviderUnavailable {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderPassesInnerName(t *testing.T) {
	rl := NewRateLimitedProvider(&staticProvider{}, time.Millisecond, nil, nil)
	defer rl.(*rateLimitedProvider).Close()

	if got := NameOf(rl, "fallback"); got != "static" {
		t.Fatalf("expected inner name, got %s", got)
	}
}
