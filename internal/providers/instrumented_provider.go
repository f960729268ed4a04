package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
	"github.com/preston-bernstein/nba-season-stats/internal/logging"
	"github.com/preston-bernstein/nba-season-stats/internal/metrics"
)

// instrumentedProvider records latency, outcome and row counts for every season fetch.
type instrumentedProvider struct {
	inner    SeasonProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumentedProvider wraps inner with logging and metrics. It never retries.
func NewInstrumentedProvider(inner SeasonProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) SeasonProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchSeason(ctx context.Context, kind stats.Kind, year int) (stats.Table, error) {
	if p == nil || p.inner == nil {
		return stats.Table{}, ErrProviderUnavailable
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "fetching season",
		logging.FieldKind, string(kind), logging.FieldSeason, year)

	start := p.now()
	table, err := p.inner.FetchSeason(ctx, kind, year)
	elapsed := p.now().Sub(start)

	p.recorder.RecordSeasonFetch(p.name, string(kind), elapsed, err)
	if err != nil {
		args := []any{
			logging.FieldKind, string(kind),
			logging.FieldSeason, year,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"error", err,
		}
		if statusErr, ok := AsStatusError(err); ok {
			args = append(args,
				logging.FieldStatusCode, statusErr.StatusCode,
				logging.FieldURL, statusErr.URL,
			)
		}
		logWithProvider(ctx, p.logger, slog.LevelError, p.name, "season fetch failed", args...)
		return stats.Table{}, err
	}

	p.recorder.RecordRows(p.name, string(kind), table.Len())
	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "season fetched",
		logging.FieldKind, string(kind),
		logging.FieldSeason, year,
		logging.FieldCount, table.Len(),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return table, nil
}
