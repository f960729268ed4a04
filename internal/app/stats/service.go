package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
	"github.com/preston-bernstein/nba-season-stats/internal/logging"
	"github.com/preston-bernstein/nba-season-stats/internal/metrics"
	"github.com/preston-bernstein/nba-season-stats/internal/providers"
)

// TableWriter persists the combined table.
type TableWriter interface {
	Write(path string, table domain.Table) error
}

// Request describes one materialization run.
type Request struct {
	Kind       domain.Kind
	Years      []int
	OutputPath string
}

// Result summarizes a completed run.
type Result struct {
	Seasons    int
	Rows       int
	Columns    int
	OutputPath string
}

// Service runs fetch, combine and write for one request at a time.
type Service struct {
	provider providers.SeasonProvider
	writer   TableWriter
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewService wires a Service. logger and recorder may be nil.
func NewService(provider providers.SeasonProvider, writer TableWriter, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		writer:   writer,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Run fetches every requested season, tags and stacks them, then writes the file.
// Nothing is written unless every season was fetched.
func (s *Service) Run(ctx context.Context, req Request) (Result, error) {
	logger := logging.FromContext(ctx, s.logger)
	start := s.now()

	res, err := s.run(ctx, req)

	elapsed := s.now().Sub(start)
	s.recorder.RecordRun(string(req.Kind), elapsed, err)
	if err != nil {
		logging.Error(logger, "run failed", err,
			logging.FieldKind, string(req.Kind),
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return Result{}, err
	}

	logging.Info(logger, "run complete",
		logging.FieldKind, string(req.Kind),
		logging.FieldCount, res.Rows,
		logging.FieldColumns, res.Columns,
		logging.FieldOutput, res.OutputPath,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return res, nil
}

func (s *Service) run(ctx context.Context, req Request) (Result, error) {
	if s.writer == nil {
		return Result{}, fmt.Errorf("table writer not configured")
	}

	logger := logging.FromContext(ctx, s.logger)
	if len(req.Years) == 0 {
		logging.Warn(logger, "empty season range, writing header only",
			logging.FieldKind, string(req.Kind),
			logging.FieldOutput, req.OutputPath,
		)
	} else {
		logging.Info(logger, "fetching seasons",
			logging.FieldKind, string(req.Kind),
			logging.FieldCount, len(req.Years),
		)
	}

	seasons, err := providers.FetchSeasons(ctx, s.provider, req.Kind, req.Years)
	if err != nil {
		return Result{}, fmt.Errorf("fetch %s stats: %w", req.Kind, err)
	}

	combined := domain.Combine(seasons)
	logging.Debug(logger, "seasons combined",
		logging.FieldCount, combined.Len(),
		logging.FieldColumns, len(combined.Columns),
	)

	if err := s.writer.Write(req.OutputPath, combined); err != nil {
		return Result{}, fmt.Errorf("write %s stats: %w", req.Kind, err)
	}

	return Result{
		Seasons:    len(seasons),
		Rows:       combined.Len(),
		Columns:    len(combined.Columns),
		OutputPath: req.OutputPath,
	}, nil
}
