package fixture

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
)

const providerName = "fixture"

var (
	playerColumns = []string{"PLAYER_ID", "PLAYER_NAME", "TEAM_ABBREVIATION", "AGE", "GP", "PTS"}
	teamColumns   = []string{"TEAM_ID", "TEAM_NAME", "GP", "W", "L", "W_PCT"}
)

type fixturePlayer struct {
	id   int
	name string
	team string
	born int
	pts  int
}

type fixtureTeam struct {
	id   int
	name string
	wins int
}

var (
	players = []fixturePlayer{
		{id: 2544, name: "Jane Doe", team: "BOS", born: 1984, pts: 1800},
		{id: 201939, name: "John Smith", team: "LAL", born: 1988, pts: 2100},
	}
	teams = []fixtureTeam{
		{id: 1610612738, name: "Boston Celtics", wins: 56},
		{id: 1610612747, name: "Los Angeles Lakers", wins: 43},
		{id: 1610612744, name: "Golden State Warriors", wins: 50},
		{id: 1610612748, name: "Miami Heat", wins: 44},
	}
)

// Provider serves deterministic season tables without touching the network.
// Useful for local runs and for exercising the pipeline end to end.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// FetchSeason returns a small synthetic table whose values vary with year.
func (p *Provider) FetchSeason(ctx context.Context, kind stats.Kind, year int) (stats.Table, error) {
	if err := ctx.Err(); err != nil {
		return stats.Table{}, err
	}
	switch kind {
	case stats.KindPlayers:
		return playerTable(year), nil
	case stats.KindTeams:
		return teamTable(year), nil
	default:
		return stats.Table{}, fmt.Errorf("%s: %w: %q", providerName, stats.ErrUnknownKind, kind)
	}
}

func playerTable(year int) stats.Table {
	rows := make([][]any, 0, len(players))
	for _, pl := range players {
		rows = append(rows, []any{pl.id, pl.name, pl.team, year - pl.born, 82, pl.pts + year%10})
	}
	return stats.Table{Columns: append([]string(nil), playerColumns...), Rows: rows}
}

func teamTable(year int) stats.Table {
	rows := make([][]any, 0, len(teams))
	for _, tm := range teams {
		wins := tm.wins - year%5
		rows = append(rows, []any{tm.id, tm.name, 82, wins, 82 - wins, float64(wins*1000/82) / 1000})
	}
	return stats.Table{Columns: append([]string(nil), teamColumns...), Rows: rows}
}
