package nbastats

import (
	"fmt"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
	"github.com/preston-bernstein/nba-season-stats/internal/providers"
)

// mapTable turns the first result set into a table, rejecting bodies that lack it.
func mapTable(resp statsResponse) (stats.Table, error) {
	if len(resp.ResultSets) == 0 {
		return stats.Table{}, providers.ShapeError(providerName, "resultSets missing or empty")
	}
	rs := resp.ResultSets[0]
	if rs.Headers == nil {
		return stats.Table{}, providers.ShapeError(providerName, "resultSets[0].headers missing")
	}
	if rs.RowSet == nil {
		return stats.Table{}, providers.ShapeError(providerName, "resultSets[0].rowSet missing")
	}

	// Combine keys columns by name, so a repeated header would merge two columns.
	seen := make(map[string]struct{}, len(rs.Headers))
	for _, h := range rs.Headers {
		if _, dup := seen[h]; dup {
			return stats.Table{}, providers.ShapeError(providerName,
				fmt.Sprintf("resultSets[0].headers repeats %q", h))
		}
		seen[h] = struct{}{}
	}

	rows := make([][]any, len(rs.RowSet))
	for i, row := range rs.RowSet {
		if len(row) != len(rs.Headers) {
			return stats.Table{}, providers.ShapeError(providerName,
				fmt.Sprintf("row %d has %d values for %d headers", i, len(row), len(rs.Headers)))
		}
		rows[i] = row
	}

	return stats.Table{
		Columns: append([]string(nil), rs.Headers...),
		Rows:    rows,
	}, nil
}
