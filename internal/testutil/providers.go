package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
)

// SeasonProvider serves canned tables per year and records every call.
type SeasonProvider struct {
	mu     sync.Mutex
	Tables map[int]stats.Table
	Errs   map[int]error
	calls  []int
}

func (p *SeasonProvider) FetchSeason(ctx context.Context, _ stats.Kind, year int) (stats.Table, error) {
	p.mu.Lock()
	p.calls = append(p.calls, year)
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return stats.Table{}, err
	}
	if err, ok := p.Errs[year]; ok {
		return stats.Table{}, err
	}
	return p.Tables[year], nil
}

// Calls returns the years requested so far, in order.
func (p *SeasonProvider) Calls() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.calls...)
}
