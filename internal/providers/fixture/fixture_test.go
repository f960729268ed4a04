package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
)

func TestFetchSeasonTeamsIsDeterministic(t *testing.T) {
	p := New()

	first, err := p.FetchSeason(context.Background(), stats.KindTeams, 2020)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := p.FetchSeason(context.Background(), stats.KindTeams, 2020)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.Len() != 4 {
		t.Fatalf("expected 4 teams, got %d", first.Len())
	}
	if first.ColumnIndex("W_PCT") != 5 {
		t.Fatalf("unexpected columns %v", first.Columns)
	}
	if first.Rows[0][3] != second.Rows[0][3] {
		t.Fatalf("expected identical wins across calls")
	}
	// 56 - 2020%5
	if first.Rows[0][3] != 56 || first.Rows[0][4] != 26 {
		t.Fatalf("unexpected record %v", first.Rows[0])
	}
}

func TestFetchSeasonPlayersVariesWithYear(t *testing.T) {
	p := New()

	a, err := p.FetchSeason(context.Background(), stats.KindPlayers, 2019)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	b, err := p.FetchSeason(context.Background(), stats.KindPlayers, 2020)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ageIdx := a.ColumnIndex("AGE")
	if a.Rows[0][ageIdx] != 35 || b.Rows[0][ageIdx] != 36 {
		t.Fatalf("expected age to follow year, got %v and %v", a.Rows[0][ageIdx], b.Rows[0][ageIdx])
	}
}

func TestFetchSeasonTablesDoNotShareColumns(t *testing.T) {
	p := New()
	a, _ := p.FetchSeason(context.Background(), stats.KindTeams, 2019)
	a.Columns[0] = "MUTATED"

	b, _ := p.FetchSeason(context.Background(), stats.KindTeams, 2019)
	if b.Columns[0] != "TEAM_ID" {
		t.Fatalf("expected fresh columns, got %v", b.Columns)
	}
}

func TestFetchSeasonRejectsUnknownKind(t *testing.T) {
	_, err := New().FetchSeason(context.Background(), stats.Kind("coaches"), 2020)
	if !errors.Is(err, stats.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestFetchSeasonHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().FetchSeason(ctx, stats.KindTeams, 2020)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestName(t *testing.T) {
	if New().Name() != "fixture" {
		t.Fatalf("unexpected name")
	}
}
