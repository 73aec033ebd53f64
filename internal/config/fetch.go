package config

import "time"

// FetchConfig controls retry and pacing behavior for roster fetches.
// Pacing is the fixed delay between teams; it is independent of the retry
// backoff applied within a single team's attempts.
type FetchConfig struct {
	MaxAttempts int
	BackoffBase float64
	Timeout     time.Duration
	Pacing      time.Duration
}

func loadFetch() FetchConfig {
	return FetchConfig{
		MaxAttempts: intEnvOrDefault(envMaxAttempts, defaultMaxAttempts),
		BackoffBase: floatEnvOrDefault(envBackoffBase, defaultBackoffBase),
		Timeout:     durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		Pacing:      durationEnvOrDefault(envFetchPacing, defaultFetchPacing),
	}
}
