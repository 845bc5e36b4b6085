// Package schedule implements the pure transformation pipeline from raw
// spreadsheet rows to display-ready match records: normalization, stream
// reference resolution, date parsing and past/upcoming classification.
package schedule

import "github.com/drumst0ck/koi-calendar/internal/domain"

// FallbackCategory is used when a row's category cell is empty.
const FallbackCategory = "Other"

// Column positions within a sheet row.
const (
	colCategory = iota
	colDate
	colTime
	colMatch
	colPhase
	colCompetition
	colStream
)

// minRowLen is the minimum number of populated positional cells a row
// needs to be kept.
const minRowLen = 5

// NormalizeRows converts raw sheet rows into match records. Rows shorter
// than five cells or with an empty category cell are dropped silently.
// IDs are assigned 1-based over the kept sequence, preserving row order.
func NormalizeRows(rows [][]string) []domain.Match {
	matches := make([]domain.Match, 0, len(rows))
	for _, row := range rows {
		if len(row) < minRowLen || row[colCategory] == "" {
			continue
		}
		matches = append(matches, domain.Match{
			ID:          len(matches) + 1,
			Category:    cellOrDefault(row, colCategory, FallbackCategory),
			Date:        cell(row, colDate),
			Time:        cell(row, colTime),
			Match:       cell(row, colMatch),
			Phase:       cell(row, colPhase),
			Competition: cell(row, colCompetition),
			Stream:      cell(row, colStream),
		})
	}
	return matches
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func cellOrDefault(row []string, idx int, fallback string) string {
	if v := cell(row, idx); v != "" {
		return v
	}
	return fallback
}
