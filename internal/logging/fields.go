package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldTeamID     = "team_id"
	FieldAlias      = "alias"
	FieldStatusCode = "status_code"
	FieldAttempt    = "attempt"
	FieldCount      = "count"
	FieldErrors     = "errors"
	FieldPath       = "path"
	FieldDurationMS = "duration_ms"
)
