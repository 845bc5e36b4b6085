package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("gsheets", 120*time.Millisecond, nil)
	r.RecordProviderAttempt("gsheets", 250*time.Millisecond, errors.New("boom"))

	snap := r.Snapshot("gsheets")
	if snap.Calls != 2 {
		t.Fatalf("expected 2 calls, got %d", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.LastCallLatency != 250*time.Millisecond {
		t.Fatalf("expected last latency to win, got %v", snap.LastCallLatency)
	}
}

func TestRecordRateLimit(t *testing.T) {
	r := NewRecorder()
	r.RecordRateLimit("gsheets")
	r.RecordRateLimit("gsheets")

	if got := r.RateLimitHits("gsheets"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := r.ProviderCalls("gsheets"); got != 0 {
		t.Fatalf("rate limit hits must not count as calls, got %d", got)
	}
}

func TestRecordExportByResult(t *testing.T) {
	r := NewRecorder()
	r.RecordExport("ok")
	r.RecordExport("ok")
	r.RecordExport("undated")

	if got := r.Exports("ok"); got != 2 {
		t.Fatalf("expected 2 ok exports, got %d", got)
	}
	if got := r.Exports("undated"); got != 1 {
		t.Fatalf("expected 1 undated export, got %d", got)
	}
	if got := r.Exports("not_found"); got != 0 {
		t.Fatalf("expected 0 not_found exports, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordProviderAttempt("gsheets", time.Second, nil)
	r.RecordRateLimit("gsheets")
	r.RecordExport("ok")
	r.RecordHTTPRequest("GET", "/api/matches", 200, time.Millisecond)
	r.RecordPollerCycle(time.Millisecond, nil)

	if snap := r.Snapshot("gsheets"); snap.Calls != 0 {
		t.Fatalf("nil recorder must report zero stats, got %+v", snap)
	}
	if got := r.Exports("ok"); got != 0 {
		t.Fatalf("nil recorder must report zero exports, got %d", got)
	}
}

func TestUnknownProviderSnapshot(t *testing.T) {
	r := NewRecorder()
	if snap := r.Snapshot("unknown"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot, got %+v", snap)
	}
}
