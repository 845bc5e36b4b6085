package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/drumst0ck/koi-calendar/internal/domain"
	"github.com/drumst0ck/koi-calendar/internal/teststubs"
)

func sampleMatches() []domain.Match {
	return []domain.Match{
		{ID: 1, Category: "League of Legends", Match: "KOI vs G2"},
		{ID: 2, Category: "VALORANT", Match: "KOI vs TH"},
	}
}

func TestRefreshReplacesSnapshotOnSuccess(t *testing.T) {
	provider := &teststubs.StubProvider{Matches: sampleMatches()}
	sink := &teststubs.StubSink{}
	p := New(provider, sink, nil, nil, time.Hour)

	count, err := p.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 matches fetched, got %d", count)
	}
	if len(sink.Replaced) != 1 {
		t.Fatalf("expected one snapshot replacement, got %d", len(sink.Replaced))
	}
	if len(sink.Replaced[0]) != 2 {
		t.Fatalf("expected full snapshot, got %d matches", len(sink.Replaced[0]))
	}

	status := p.Status()
	if status.LastSuccess.IsZero() {
		t.Fatal("expected last success to be recorded")
	}
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected zero failures, got %d", status.ConsecutiveFailures)
	}
	if !status.IsReady() {
		t.Fatal("expected poller to report ready after a success")
	}
}

func TestRefreshFailureLeavesSinkUntouched(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("sheet unavailable")}
	sink := &teststubs.StubSink{}
	p := New(provider, sink, nil, nil, time.Hour)

	if _, err := p.Refresh(context.Background()); err == nil {
		t.Fatal("expected fetch error to surface")
	}
	if len(sink.Replaced) != 0 {
		t.Fatalf("failed cycle must not touch the sink, got %d replacements", len(sink.Replaced))
	}

	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected one consecutive failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError != "sheet unavailable" {
		t.Fatalf("unexpected last error %q", status.LastError)
	}
	if status.IsReady() {
		t.Fatal("poller must not be ready before any success")
	}
}

func TestRefreshRecoveryResetsFailureCount(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("boom")}
	sink := &teststubs.StubSink{}
	p := New(provider, sink, nil, nil, time.Hour)

	for i := 0; i < 3; i++ {
		_, _ = p.Refresh(context.Background())
	}
	if p.Status().IsReady() {
		t.Fatal("expected not ready after repeated failures")
	}

	provider.Err = nil
	provider.Matches = sampleMatches()
	if _, err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}

	status := p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failure count reset, got %d", status.ConsecutiveFailures)
	}
	if status.LastError != "" {
		t.Fatalf("expected last error cleared, got %q", status.LastError)
	}
	if !status.IsReady() {
		t.Fatal("expected ready after recovery")
	}
}

func TestStartPerformsInitialFetch(t *testing.T) {
	provider := &teststubs.StubProvider{
		Matches: sampleMatches(),
		Notify:  make(chan struct{}),
	}
	sink := &teststubs.StubSink{}
	p := New(provider, sink, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	defer func() { _ = p.Stop(context.Background()) }()

	select {
	case <-provider.Notify:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial fetch")
	}
}

func TestRefreshUsesDirectProvider(t *testing.T) {
	loop := &teststubs.StubProvider{Matches: sampleMatches()}
	direct := &teststubs.StubProvider{Err: errors.New("upstream said no")}
	sink := &teststubs.StubSink{}

	p := New(loop, sink, nil, nil, time.Hour)
	p.UseDirectRefresh(direct)

	_, err := p.Refresh(context.Background())
	if err == nil || err.Error() != "upstream said no" {
		t.Fatalf("expected the direct provider's error verbatim, got %v", err)
	}
	if got := direct.Calls.Load(); got != 1 {
		t.Fatalf("expected exactly one direct attempt, got %d", got)
	}
	if got := loop.Calls.Load(); got != 0 {
		t.Fatalf("manual refresh must not touch the loop provider, got %d calls", got)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	provider := &teststubs.StubProvider{Matches: sampleMatches()}
	p := New(provider, &teststubs.StubSink{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop must be a no-op: %v", err)
	}
}
