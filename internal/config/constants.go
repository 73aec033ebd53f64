package config

import "time"

const (
	envTeamsFile    = "TEAMS_FILE"
	envOutputDir    = "OUTPUT_DIR"
	envMaxAttempts  = "FETCH_MAX_ATTEMPTS"
	envBackoffBase  = "FETCH_BACKOFF_BASE"
	envFetchTimeout = "FETCH_TIMEOUT"
	envFetchPacing  = "FETCH_PACING"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultTeamsFile = "sportsradar-teams.json"
	defaultOutputDir = "output"
	// Retry budget per team: 4 attempts with exponential delays off base 2.
	defaultMaxAttempts  = 4
	defaultBackoffBase  = 2.0
	defaultFetchTimeout = 30 * Duration(time.Second)
	// Gentle pacing between teams to stay clear of trial-tier rate limits.
	defaultFetchPacing = 150 * Duration(time.Millisecond)
	defaultMetricsPort = "9090"
)
