package providers

import (
	"context"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
)

// SeasonProvider fetches one season of aggregate stats for a target kind.
type SeasonProvider interface {
	FetchSeason(ctx context.Context, kind stats.Kind, year int) (stats.Table, error)
}

// FetchSeasons requests each year in order, one at a time. The first failure
// aborts the batch and discards whatever was already fetched.
func FetchSeasons(ctx context.Context, p SeasonProvider, kind stats.Kind, years []int) ([]stats.SeasonTable, error) {
	if p == nil {
		return nil, ErrProviderUnavailable
	}
	seasons := make([]stats.SeasonTable, 0, len(years))
	for _, year := range years {
		table, err := p.FetchSeason(ctx, kind, year)
		if err != nil {
			return nil, err
		}
		seasons = append(seasons, stats.SeasonTable{Year: year, Table: table})
	}
	return seasons, nil
}
