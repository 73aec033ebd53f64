package config

// Config holds runtime configuration for a fetch run.
type Config struct {
	TeamsFile  string
	OutputDir  string
	Sportradar SportradarConfig
	Fetch      FetchConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		TeamsFile:  envOrDefault(envTeamsFile, defaultTeamsFile),
		OutputDir:  envOrDefault(envOutputDir, defaultOutputDir),
		Sportradar: loadSportradar(),
		Fetch:      loadFetch(),
		Metrics:    loadMetrics(),
	}
}
