// Package poller drives the periodic fetch cycle: pull the schedule from the
// provider and replace the in-memory snapshot in full on success.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/drumst0ck/koi-calendar/internal/domain"
	"github.com/drumst0ck/koi-calendar/internal/logging"
	"github.com/drumst0ck/koi-calendar/internal/metrics"
	"github.com/drumst0ck/koi-calendar/internal/providers"
)

// The sheet is cached upstream for five minutes; polling faster buys nothing.
const defaultInterval = 5 * time.Minute

// Sink receives the result of a successful fetch cycle.
type Sink interface {
	ReplaceMatches(matches []domain.Match)
}

// Poller fetches the schedule on an interval and swaps the snapshot.
type Poller struct {
	provider providers.ScheduleProvider
	refresh  providers.ScheduleProvider
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.ScheduleProvider, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		refresh:  provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// UseDirectRefresh routes manual refreshes through the given provider. The
// poll loop keeps its own (typically retried, rate-limited) provider; the
// manual path makes exactly one attempt so a failure surfaces immediately
// with its cause instead of blocking on backoff or the rate-limit interval.
func (p *Poller) UseDirectRefresh(provider providers.ScheduleProvider) {
	if provider != nil {
		p.refresh = provider
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx, p.provider)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx, p.provider)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh runs one fetch cycle immediately. It backs the manual retry
// action: only the fetch is re-invoked, nothing else is reset. Returns the
// number of matches fetched.
func (p *Poller) Refresh(ctx context.Context) (int, error) {
	return p.fetchOnce(ctx, p.refresh)
}

func (p *Poller) fetchOnce(ctx context.Context, provider providers.ScheduleProvider) (int, error) {
	start := time.Now()
	p.recordAttempt(start)
	matches, err := provider.FetchMatches(ctx)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		// Failed cycles never touch the snapshot; the previous one stays
		// visible until a cycle succeeds.
		p.logError("schedule fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return 0, err
	}

	if p.sink != nil {
		p.sink.ReplaceMatches(matches)
	}
	p.recordSuccess(start)
	p.logInfo("schedule refreshed",
		logging.FieldCount, len(matches),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return len(matches), nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.ScheduleProvider {
	return p.provider
}
