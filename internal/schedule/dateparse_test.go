package schedule

import (
	"testing"
	"time"
)

var ref = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestParseMomentRoundTrip(t *testing.T) {
	moment, err := ParseMoment("25 diciembre", "20:00", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := time.Date(2025, 12, 25, 20, 0, 0, 0, time.UTC)
	if !moment.Equal(expected) {
		t.Fatalf("expected %v, got %v", expected, moment)
	}
}

func TestParseMomentMonthNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Diciembre", "DICIEMBRE", "diciembre"} {
		if _, err := ParseMoment("25 "+name, "20:00", ref); err != nil {
			t.Fatalf("month %q should parse, got %v", name, err)
		}
	}
}

func TestParseMomentUsesReferenceYear(t *testing.T) {
	nextYear := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	moment, err := ParseMoment("5 enero", "10:30", nextYear)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moment.Year() != 2026 {
		t.Fatalf("expected reference year 2026, got %d", moment.Year())
	}
}

func TestParseMomentRejections(t *testing.T) {
	cases := []struct {
		name string
		date string
		time string
	}{
		{"empty date", "", "20:00"},
		{"empty time", "25 diciembre", ""},
		{"tbd sentinel", "5 enero", "TBD"},
		{"tbd lowercase", "5 enero", "tbd"},
		{"tbd padded", "5 enero", " tbd "},
		{"one token", "diciembre", "20:00"},
		{"three tokens", "25 de diciembre", "20:00"},
		{"unknown month", "25 brumario", "20:00"},
		{"english month", "25 december", "20:00"},
		{"non-numeric day", "xx diciembre", "20:00"},
		{"day out of month", "31 febrero", "20:00"},
		{"day over range", "32 enero", "20:00"},
		{"bad time", "25 diciembre", "25:99"},
	}

	for _, tc := range cases {
		if _, err := ParseMoment(tc.date, tc.time, ref); err == nil {
			t.Fatalf("%s: expected error for (%q, %q)", tc.name, tc.date, tc.time)
		}
	}
}

func TestParseMomentTrimsInput(t *testing.T) {
	moment, err := ParseMoment("  25 diciembre  ", " 20:00 ", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moment.Hour() != 20 || moment.Day() != 25 {
		t.Fatalf("unexpected moment %v", moment)
	}
}
