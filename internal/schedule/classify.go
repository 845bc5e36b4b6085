package schedule

import (
	"sort"
	"time"

	"github.com/drumst0ck/koi-calendar/internal/domain"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Buckets is the three-way partition of a match collection relative to an
// evaluation instant.
type Buckets struct {
	Upcoming []domain.Match
	Past     []domain.Match
	Undated  []domain.Match
}

// Classify filters by category (exact match, CategoryAll keeps everything)
// and partitions the remainder against now. Moments are recomputed from the
// record fields on every call; nothing is cached.
func Classify(matches []domain.Match, category string, now time.Time) Buckets {
	var b Buckets
	upcomingAt := make(map[int]time.Time)
	pastAt := make(map[int]time.Time)

	for _, m := range matches {
		if category != "" && category != CategoryAll && m.Category != category {
			continue
		}
		moment, err := ParseMoment(m.Date, m.Time, now)
		switch {
		case err != nil:
			b.Undated = append(b.Undated, m)
		case moment.Before(now):
			pastAt[m.ID] = moment
			b.Past = append(b.Past, m)
		default:
			upcomingAt[m.ID] = moment
			b.Upcoming = append(b.Upcoming, m)
		}
	}

	sort.SliceStable(b.Upcoming, func(i, j int) bool {
		return upcomingAt[b.Upcoming[i].ID].Before(upcomingAt[b.Upcoming[j].ID])
	})
	sort.SliceStable(b.Past, func(i, j int) bool {
		return pastAt[b.Past[j].ID].Before(pastAt[b.Past[i].ID])
	})

	return b
}

// Ordered flattens the buckets into display order: upcoming soonest-first,
// then past most-recent-first, then undated in original row order.
func (b Buckets) Ordered() []domain.Match {
	out := make([]domain.Match, 0, len(b.Upcoming)+len(b.Past)+len(b.Undated))
	out = append(out, b.Upcoming...)
	out = append(out, b.Past...)
	out = append(out, b.Undated...)
	return out
}

// Order is a convenience for the common filter-classify-flatten call.
func Order(matches []domain.Match, category string, now time.Time) []domain.Match {
	return Classify(matches, category, now).Ordered()
}

// IsPast reports whether a match started strictly before now. Undated
// matches are never past. This is the same comparator the classifier
// partitions with; clients use it to dim finished matches.
func IsPast(m domain.Match, now time.Time) bool {
	moment, err := ParseMoment(m.Date, m.Time, now)
	if err != nil {
		return false
	}
	return moment.Before(now)
}

// Categories returns the distinct category labels in first-seen order,
// feeding the filter control.
func Categories(matches []domain.Match) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		out = append(out, m.Category)
	}
	return out
}
