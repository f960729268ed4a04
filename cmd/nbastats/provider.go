package main

import (
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/nba-season-stats/internal/config"
	"github.com/preston-bernstein/nba-season-stats/internal/providers"
	"github.com/preston-bernstein/nba-season-stats/internal/providers/fixture"
	"github.com/preston-bernstein/nba-season-stats/internal/providers/nbastats"
)

type namedProvider interface {
	providers.SeasonProvider
	Name() string
}

// selectProvider picks the upstream named by cfg.Provider. Config validation
// has already rejected unknown names, so anything else falls through to stats.nba.com.
func selectProvider(cfg config.Config, tracer trace.Tracer) namedProvider {
	switch strings.ToLower(cfg.Provider) {
	case "fixture":
		return fixture.New()
	default:
		return nbastats.NewClient(nbastats.Config{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
			Tracer:  tracer,
		})
	}
}
