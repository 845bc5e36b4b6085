package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "POLL_INTERVAL", "PROVIDER", "GOOGLE_SHEETS_RANGE", "METRICS_ENABLED", "METRICS_PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %q", cfg.Port)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("expected default poll interval 5m, got %v", cfg.PollInterval)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected default provider fixture, got %q", cfg.Provider)
	}
	if cfg.Sheets.Range != "A3:H100" {
		t.Fatalf("expected default range A3:H100, got %q", cfg.Sheets.Range)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
	if cfg.Metrics.Port != "9090" {
		t.Fatalf("expected default metrics port 9090, got %q", cfg.Metrics.Port)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("PROVIDER", "gsheets")
	t.Setenv("GOOGLE_SHEETS_API_KEY", "key-123")
	t.Setenv("GOOGLE_SHEETS_ID", "sheet-abc")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("expected 30s poll interval, got %v", cfg.PollInterval)
	}
	if cfg.Provider != "gsheets" {
		t.Fatalf("expected provider gsheets, got %q", cfg.Provider)
	}
	if cfg.Sheets.APIKey != "key-123" || cfg.Sheets.SpreadsheetID != "sheet-abc" {
		t.Fatalf("unexpected sheets config %+v", cfg.Sheets)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestDurationEnvFallsBackOnGarbage(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "not-a-duration")
	if got := Load().PollInterval; got != 5*time.Minute {
		t.Fatalf("expected default on unparsable duration, got %v", got)
	}

	t.Setenv("POLL_INTERVAL", "-10s")
	if got := Load().PollInterval; got != 5*time.Minute {
		t.Fatalf("expected default on non-positive duration, got %v", got)
	}
}

func TestBoolEnvVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"maybe", true}, // falls back to the default
	}
	for _, tc := range cases {
		t.Setenv("METRICS_ENABLED", tc.raw)
		if got := Load().Metrics.Enabled; got != tc.want {
			t.Fatalf("METRICS_ENABLED=%q: expected %v, got %v", tc.raw, tc.want, got)
		}
	}
}
