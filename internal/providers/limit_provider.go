package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/drumst0ck/koi-calendar/internal/domain"
	"github.com/drumst0ck/koi-calendar/internal/logging"
	"github.com/drumst0ck/koi-calendar/internal/metrics"
)

// rateLimitedProvider wraps a ScheduleProvider and enforces a minimum
// interval between upstream calls.
type rateLimitedProvider struct {
	next     ScheduleProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewRateLimitedProvider returns a ScheduleProvider that limits calls to the
// given interval. Calls block until the interval elapses to avoid exceeding
// upstream quotas.
func NewRateLimitedProvider(next ScheduleProvider, interval time.Duration, logger *slog.Logger, recorder *metrics.Recorder) ScheduleProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
		metrics:  recorder,
	}
}

func (p *rateLimitedProvider) Name() string {
	if p == nil || p.next == nil {
		return "rate-limited"
	}
	return NameOf(p.next, "rate-limited")
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) FetchMatches(ctx context.Context) ([]domain.Match, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		if p.logger != nil {
			p.logger.Warn("rate-limited fetch canceled", slog.String(logging.FieldProvider, p.Name()))
		}
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	if p.metrics != nil {
		p.metrics.RecordRateLimit(p.Name())
	}
	return p.next.FetchMatches(ctx)
}
