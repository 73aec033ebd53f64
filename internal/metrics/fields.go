package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrTeam    = "team"
	AttrOutcome = "outcome"
)

// Per-team outcome labels recorded at the end of each team's processing.
const (
	OutcomeSuccess          = "success"
	OutcomeMissingID        = "missing_id"
	OutcomeHTTPError        = "http_error"
	OutcomeRetriesExhausted = "retries_exhausted"
	OutcomeInvalidJSON      = "invalid_json"
	OutcomeFailure          = "failure"
)
