package metrics

import (
	"sync"
	"time"
)

type kindStats struct {
	fetches          int
	errors           int
	rows             int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about a run and mirrors them to OTel when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*kindStats
	runs    int
	runErrs int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*kindStats),
		otel:  otel,
	}
}

// RecordSeasonFetch counts one season request for kind and stores its latency.
// provider only labels the OTel series; in-memory counters are per kind.
func (r *Recorder) RecordSeasonFetch(provider, kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(kind)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSeasonFetch(provider, kind, duration, err)
	}
}

// RecordRows adds n fetched rows for kind.
func (r *Recorder) RecordRows(provider, kind string, n int) {
	if r == nil || n <= 0 {
		return
	}

	r.mu.Lock()
	r.ensureStats(kind).rows += n
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRows(provider, kind, n)
	}
}

// RecordRun tracks a whole pipeline run.
func (r *Recorder) RecordRun(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs++
	if err != nil {
		r.runErrs++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(kind, duration, err)
	}
}

// Snapshot is a copy of the counters recorded for one kind.
type Snapshot struct {
	Fetches          int
	Errors           int
	Rows             int
	LastFetchLatency time.Duration
}

// Snapshot returns a copy of the current stats for kind.
func (r *Recorder) Snapshot(kind string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[kind]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		Rows:             stats.rows,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// Runs returns the number of runs recorded and how many failed.
func (r *Recorder) Runs() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs, r.runErrs
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(kind string) *kindStats {
	stats, ok := r.stats[kind]
	if !ok {
		stats = &kindStats{}
		r.stats[kind] = stats
	}
	return stats
}
