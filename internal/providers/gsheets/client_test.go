package gsheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drumst0ck/koi-calendar/internal/providers"
)

func TestFetchMatchesNormalizesRows(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"range": "A3:H100",
			"majorDimension": "ROWS",
			"values": [
				["League of Legends", "25 Diciembre", "20:00", "KOI vs G2", "Final", "LEC", "koi_official"],
				["", "x", "x", "x", "x"],
				["VALORANT", "26 Diciembre", "TBD", "KOI vs TH", "Groups"]
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:       srv.URL,
		SpreadsheetID: "sheet-1",
		Range:         "A3:H100",
		APIKey:        "test-key",
		HTTPClient:    srv.Client(),
	})

	matches, err := client.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches after normalization, got %d", len(matches))
	}
	if matches[0].ID != 1 || matches[0].Competition != "LEC" {
		t.Fatalf("unexpected first match %+v", matches[0])
	}
	if matches[1].ID != 2 || matches[1].Time != "TBD" {
		t.Fatalf("unexpected second match %+v", matches[1])
	}
	if gotPath != "/sheet-1/values/A3:H100" {
		t.Fatalf("unexpected request path %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("expected api key in query, got %q", gotKey)
	}
}

func TestFetchMatchesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"message": "API key invalid"}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:       srv.URL,
		SpreadsheetID: "sheet-1",
		APIKey:        "bad-key",
		HTTPClient:    srv.Client(),
	})

	_, err := client.FetchMatches(context.Background())
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	ue, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %T %v", err, err)
	}
	if ue.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", ue.StatusCode)
	}
	if !strings.Contains(ue.Message, "API key invalid") {
		t.Fatalf("expected body excerpt in message, got %q", ue.Message)
	}
}

func TestFetchMatchesMissingConfiguration(t *testing.T) {
	if _, err := NewClient(Config{APIKey: "k"}).FetchMatches(context.Background()); err == nil {
		t.Fatal("expected error without spreadsheet id")
	}
	if _, err := NewClient(Config{SpreadsheetID: "s"}).FetchMatches(context.Background()); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestFetchMatchesEmptyValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"range": "A3:H100", "majorDimension": "ROWS"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:       srv.URL,
		SpreadsheetID: "sheet-1",
		APIKey:        "k",
		HTTPClient:    srv.Client(),
	})

	matches, err := client.FetchMatches(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches for empty values, got %+v", matches)
	}
}
