package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TBDSentinel marks a match whose start time is not yet determined.
const TBDSentinel = "TBD"

// spanishMonths maps lower-cased full Spanish month names to month numbers.
var spanishMonths = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// ParseMoment resolves a localized "<day> <month-name>" date and an "HH:MM"
// time into an absolute moment. The sheet carries no year, so the year (and
// location) are taken from the reference instant; callers pass the evaluation
// time and must not cache results across year boundaries.
//
// A non-nil error means the record is undated: empty fields, the TBD
// sentinel, a malformed date, an unknown month name or an impossible
// calendar moment such as "31 febrero".
func ParseMoment(date, timeStr string, ref time.Time) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)

	if date == "" {
		return time.Time{}, fmt.Errorf("match has no date")
	}
	if timeStr == "" {
		return time.Time{}, fmt.Errorf("match has no time")
	}
	if strings.EqualFold(timeStr, TBDSentinel) {
		return time.Time{}, fmt.Errorf("match time is undetermined (TBD)")
	}

	parts := strings.Split(date, " ")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("malformed date %q: want \"<day> <month>\"", date)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("malformed day %q in date %q", parts[0], date)
	}

	month, ok := spanishMonths[strings.ToLower(parts[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month name %q in date %q", parts[1], date)
	}

	composed := fmt.Sprintf("%04d-%02d-%02dT%s", ref.Year(), int(month), day, timeStr)
	moment, err := time.ParseInLocation("2006-01-02T15:04", composed, ref.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid moment %q %q: %w", date, timeStr, err)
	}
	return moment, nil
}
