package stats

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	domain "github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
	"github.com/preston-bernstein/nba-season-stats/internal/export"
	"github.com/preston-bernstein/nba-season-stats/internal/metrics"
	"github.com/preston-bernstein/nba-season-stats/internal/testutil"
)

type recordingWriter struct {
	calls int
	path  string
	table domain.Table
	err   error
}

func (w *recordingWriter) Write(path string, table domain.Table) error {
	w.calls++
	w.path = path
	w.table = table
	return w.err
}

func seasonProvider() *testutil.SeasonProvider {
	return &testutil.SeasonProvider{Tables: map[int]domain.Table{
		2019: {Columns: []string{"TEAM_ID", "W"}, Rows: [][]any{{"a", 1}, {"b", 2}}},
		2020: {Columns: []string{"TEAM_ID", "W"}, Rows: [][]any{{"c", 3}}},
	}}
}

func TestRunFetchesCombinesAndWrites(t *testing.T) {
	provider := seasonProvider()
	writer := &recordingWriter{}
	rec := metrics.NewRecorder()
	svc := NewService(provider, writer, nil, rec)

	res, err := svc.Run(context.Background(), Request{Kind: domain.KindTeams, Years: []int{2019, 2020}, OutputPath: "out.csv"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if res.Seasons != 2 || res.Rows != 3 || res.Columns != 3 || res.OutputPath != "out.csv" {
		t.Fatalf("unexpected result %+v", res)
	}
	if writer.calls != 1 || writer.path != "out.csv" {
		t.Fatalf("expected a single write to out.csv, got %d to %q", writer.calls, writer.path)
	}
	seasonIdx := writer.table.ColumnIndex(domain.ColumnSeason)
	gotSeasons := []any{}
	for _, row := range writer.table.Rows {
		gotSeasons = append(gotSeasons, row[seasonIdx])
	}
	if len(gotSeasons) != 3 || gotSeasons[0] != 2019 || gotSeasons[1] != 2019 || gotSeasons[2] != 2020 {
		t.Fatalf("unexpected season tags %v", gotSeasons)
	}
	if total, failed := rec.Runs(); total != 1 || failed != 0 {
		t.Fatalf("expected one successful run recorded, got %d/%d", total, failed)
	}
}

func TestRunAbortsBeforeWritingOnFetchFailure(t *testing.T) {
	provider := seasonProvider()
	provider.Errs = map[int]error{2020: errors.New("upstream down")}
	writer := &recordingWriter{}
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	svc := NewService(provider, writer, logger, rec)

	_, err := svc.Run(context.Background(), Request{Kind: domain.KindTeams, Years: []int{2019, 2020}, OutputPath: "out.csv"})
	if err == nil || !strings.Contains(err.Error(), "upstream down") {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if writer.calls != 0 {
		t.Fatalf("expected no write after a failed fetch, got %d", writer.calls)
	}
	if _, failed := rec.Runs(); failed != 1 {
		t.Fatalf("expected failed run to be recorded")
	}
	if !strings.Contains(buf.String(), "run failed") {
		t.Fatalf("expected failure log, got %q", buf.String())
	}
}

func TestRunPropagatesWriteErrors(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewService(seasonProvider(), &recordingWriter{err: boom}, nil, nil)

	if _, err := svc.Run(context.Background(), Request{Kind: domain.KindTeams, Years: []int{2019}, OutputPath: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRunEmptyRangeWritesSeasonOnlyHeader(t *testing.T) {
	provider := seasonProvider()
	path := filepath.Join(t.TempDir(), "empty.csv")
	svc := NewService(provider, export.NewCSVWriter(), nil, nil)

	res, err := svc.Run(context.Background(), Request{Kind: domain.KindPlayers, Years: []int{}, OutputPath: path})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Rows != 0 || res.Seasons != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(provider.Calls()) != 0 {
		t.Fatalf("expected no fetches, got %v", provider.Calls())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file: %v", err)
	}
	if string(raw) != "SEASON\n" {
		t.Fatalf("unexpected contents %q", raw)
	}
}

func TestRunWithoutWriter(t *testing.T) {
	svc := NewService(seasonProvider(), nil, nil, nil)
	if _, err := svc.Run(context.Background(), Request{Kind: domain.KindTeams}); err == nil {
		t.Fatal("expected error without writer")
	}
}

func TestRunLogsCompletion(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	svc := NewService(seasonProvider(), &recordingWriter{}, logger, nil)
	svc.now = testutil.StepClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Second)

	if _, err := svc.Run(context.Background(), Request{Kind: domain.KindTeams, Years: []int{2019}, OutputPath: "out.csv"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"run complete", "kind=teams", "count=2", "output=out.csv", "duration_ms=1000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in logs, got %q", want, out)
		}
	}
}

func TestRunWarnsOnEmptyRange(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	svc := NewService(seasonProvider(), &recordingWriter{}, logger, nil)

	if _, err := svc.Run(context.Background(), Request{Kind: domain.KindTeams, Years: nil, OutputPath: "out.csv"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "empty season range") {
		t.Fatalf("expected empty range warning, got %q", out)
	}
	if strings.Contains(out, "fetching seasons") {
		t.Fatalf("expected no fetch log for empty range, got %q", out)
	}
}

func TestRunLogsCombinedShapeAtDebug(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	svc := NewService(seasonProvider(), &recordingWriter{}, logger, nil)

	if _, err := svc.Run(context.Background(), Request{Kind: domain.KindTeams, Years: []int{2019, 2020}, OutputPath: "out.csv"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG msg=\"seasons combined\" count=3 columns=3") {
		t.Fatalf("expected combined shape at debug, got %q", out)
	}
}
