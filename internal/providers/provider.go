// Package providers defines how the upstream schedule source is fetched and
// the shared wrappers (retry, rate limit) applied to any implementation.
package providers

import (
	"context"

	"github.com/drumst0ck/koi-calendar/internal/domain"
)

// ScheduleProvider fetches the full match schedule from an upstream source
// and returns it normalized. A fetch either yields a complete, consistent
// snapshot or an error; there are no partial results.
type ScheduleProvider interface {
	FetchMatches(ctx context.Context) ([]domain.Match, error)
}

// Named is implemented by providers that know their own name for logs and
// metrics attribution.
type Named interface {
	Name() string
}

// NameOf returns the provider's self-reported name or a fallback.
func NameOf(p ScheduleProvider, fallback string) string {
	if named, ok := p.(Named); ok {
		if name := named.Name(); name != "" {
			return name
		}
	}
	return fallback
}
