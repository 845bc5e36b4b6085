package server

import (
	"log/slog"
	"time"

	"github.com/drumst0ck/koi-calendar/internal/config"
	"github.com/drumst0ck/koi-calendar/internal/logging"
	"github.com/drumst0ck/koi-calendar/internal/metrics"
	"github.com/drumst0ck/koi-calendar/internal/providers"
	"github.com/drumst0ck/koi-calendar/internal/providers/fixture"
	"github.com/drumst0ck/koi-calendar/internal/providers/gsheets"
)

// providerFactory assembles the provider with shared wrappers (rate limit +
// retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the poll-loop provider (rate limited + retried) and the bare
// base provider. Manual refreshes take the base: one attempt, no backoff, no
// rate-limit wait, so an upstream failure reaches the caller immediately.
func (f providerFactory) build(cfg config.Config) (loop, direct providers.ScheduleProvider) {
	base := selectProvider(cfg, f.logger)
	// Shared rate limiter keeps the poll loop inside the Sheets API quota.
	limited := providers.NewRateLimitedProvider(base, time.Minute, f.logger, f.metrics)
	loop = providers.NewRetryingProvider(limited, f.logger, f.metrics, providers.NameOf(base, cfg.Provider), 0, 0)
	return loop, base
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScheduleProvider {
	switch cfg.Provider {
	case "gsheets":
		return gsheets.NewClient(gsheets.Config{
			BaseURL:       cfg.Sheets.BaseURL,
			SpreadsheetID: cfg.Sheets.SpreadsheetID,
			Range:         cfg.Sheets.Range,
			APIKey:        cfg.Sheets.APIKey,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		}
		return fixture.New()
	}
}
