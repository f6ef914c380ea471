package scheduler

import "github.com/rs/zerolog"

// Sweeper evicts expired cache entries.
type Sweeper interface {
	Sweep() int
}

// Recomputer re-runs a batch computation and reports how many items
// were processed.
type Recomputer interface {
	RecomputeAll() (int, error)
}

// CacheSweepJob evicts expired cache entries on a schedule so the
// cache cannot grow unbounded between invalidations.
type CacheSweepJob struct {
	cache Sweeper
	log   zerolog.Logger
}

// NewCacheSweepJob creates a cache sweep job
func NewCacheSweepJob(cache Sweeper, log zerolog.Logger) *CacheSweepJob {
	return &CacheSweepJob{
		cache: cache,
		log:   log.With().Str("job", "cache_sweep").Logger(),
	}
}

// Name returns the job name
func (j *CacheSweepJob) Name() string { return "cache_sweep" }

// Run sweeps the cache once.
func (j *CacheSweepJob) Run() error {
	evicted := j.cache.Sweep()
	if evicted > 0 {
		j.log.Debug().Int("evicted", evicted).Msg("Swept expired cache entries")
	}
	return nil
}

// RiskRecomputeJob periodically refreshes every stored risk profile so
// goal-horizon drift (goals moving closer) is reflected without
// waiting for a user-triggered calculation.
type RiskRecomputeJob struct {
	service Recomputer
	log     zerolog.Logger
}

// NewRiskRecomputeJob creates a risk recompute job
func NewRiskRecomputeJob(service Recomputer, log zerolog.Logger) *RiskRecomputeJob {
	return &RiskRecomputeJob{
		service: service,
		log:     log.With().Str("job", "risk_recompute").Logger(),
	}
}

// Name returns the job name
func (j *RiskRecomputeJob) Name() string { return "risk_recompute" }

// Run recomputes all stored risk profiles.
func (j *RiskRecomputeJob) Run() error {
	recomputed, err := j.service.RecomputeAll()
	if err != nil {
		return err
	}
	j.log.Info().Int("recomputed", recomputed).Msg("Risk profiles recomputed")
	return nil
}
