package metrics

import (
	"sync"
	"time"
)

type teamStats struct {
	attempts       int
	errors         int
	rateLimitHits  int
	lastRetryAfter time.Duration
	lastLatency    time.Duration
}

// Recorder captures lightweight, in-memory metrics about roster fetches.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*teamStats
	outcomes map[string]int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:    make(map[string]*teamStats),
		outcomes: make(map[string]int),
		otel:     otel,
	}
}

// RecordFetchAttempt increments counters for one fetch attempt and stores the
// last observed latency.
func (r *Recorder) RecordFetchAttempt(team string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(team)
	r.mu.Lock()
	stats.attempts++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(team, duration, err)
	}
}

// RecordRateLimit tracks that a fetch hit a rate limit and stores the last
// Retry-After.
func (r *Recorder) RecordRateLimit(team string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(team)
	r.mu.Lock()
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(team, retryAfter)
	}
}

// RecordTeamOutcome counts the terminal outcome of one team's processing.
func (r *Recorder) RecordTeamOutcome(outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.outcomes[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTeamOutcome(outcome)
	}
}

// RecordRun tracks the duration and result of a whole batch run.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRun(duration, err)
}

// Snapshot is a copy of the current stats for one team.
type Snapshot struct {
	Attempts       int
	Errors         int
	RateLimitHits  int
	LastRetryAfter time.Duration
	LastLatency    time.Duration
}

func (r *Recorder) Snapshot(team string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[team]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Attempts:       stats.attempts,
		Errors:         stats.errors,
		RateLimitHits:  stats.rateLimitHits,
		LastRetryAfter: stats.lastRetryAfter,
		LastLatency:    stats.lastLatency,
	}
}

// FetchAttempts returns the total attempts recorded for a team.
func (r *Recorder) FetchAttempts(team string) int {
	return r.Snapshot(team).Attempts
}

// FetchErrors returns the total failed attempts recorded for a team.
func (r *Recorder) FetchErrors(team string) int {
	return r.Snapshot(team).Errors
}

// RateLimitHits returns the number of rate limit events seen for a team.
func (r *Recorder) RateLimitHits(team string) int {
	return r.Snapshot(team).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a team.
func (r *Recorder) LastRetryAfter(team string) time.Duration {
	return r.Snapshot(team).LastRetryAfter
}

// TeamOutcomes returns how many teams finished with the given outcome.
func (r *Recorder) TeamOutcomes(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[outcome]
}

func (r *Recorder) ensureStats(team string) *teamStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[team]
	if !ok {
		stats = &teamStats{}
		r.stats[team] = stats
	}
	return stats
}
