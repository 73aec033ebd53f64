package domain

import (
	"time"

	"ncaafb-roster-fetcher/internal/timeutil"
)

// DefaultAlias names per-team output files when a team entry has no alias.
const DefaultAlias = "team"

// MetaField is the key under which team metadata is embedded in a roster payload.
const MetaField = "_team_meta"

// Error record statuses for non-HTTP outcomes.
const (
	StatusMissingID          = "missing team id"
	StatusFailedAfterRetries = "failed after retries"
	StatusInvalidJSON        = "invalid json in response"
)

// TeamSpec identifies one team to fetch a roster for, sourced from the teams input file.
type TeamSpec struct {
	ID     string `json:"id"`
	Alias  string `json:"alias"`
	Market string `json:"market,omitempty"`
	Name   string `json:"name,omitempty"`
}

// AliasOrDefault returns the team alias, falling back to DefaultAlias when blank.
func (t TeamSpec) AliasOrDefault() string {
	if t.Alias == "" {
		return DefaultAlias
	}
	return t.Alias
}

// Meta builds the metadata block embedded in roster payloads.
func (t TeamSpec) Meta() TeamMeta {
	return TeamMeta{
		ID:     t.ID,
		Alias:  t.AliasOrDefault(),
		Market: t.Market,
		Name:   t.Name,
	}
}

// TeamMeta echoes the originating TeamSpec inside each roster payload so the
// combined file is self-describing.
type TeamMeta struct {
	ID     string `json:"id"`
	Alias  string `json:"alias"`
	Market string `json:"market"`
	Name   string `json:"name"`
}

// Roster is an upstream roster payload. The shape is upstream-defined, so it
// stays a generic JSON object rather than a typed model.
type Roster map[string]any

// WithMeta attaches team metadata under MetaField and returns the roster.
// A nil roster (a 200 response with a null body) is promoted to an empty one.
func (r Roster) WithMeta(meta TeamMeta) Roster {
	if r == nil {
		r = Roster{}
	}
	r[MetaField] = meta
	return r
}

// ErrorRecord captures one team's failure. Status holds either an HTTP status
// code (int) or one of the Status* strings / an error message, mirroring the
// combined output schema.
type ErrorRecord struct {
	TeamID string `json:"team_id,omitempty"`
	Alias  string `json:"alias"`
	Status any    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// MissingIDError records a team entry that had no id; no fetch is attempted.
func MissingIDError(alias string) ErrorRecord {
	return ErrorRecord{Alias: alias, Status: StatusMissingID}
}

// HTTPStatusError records a non-200, non-retryable upstream response.
func HTTPStatusError(teamID, alias string, code int, detail string) ErrorRecord {
	return ErrorRecord{TeamID: teamID, Alias: alias, Status: code, Detail: detail}
}

// RetriesExhaustedError records a team whose transient failures outlasted the
// attempt budget.
func RetriesExhaustedError(teamID, alias string) ErrorRecord {
	return ErrorRecord{TeamID: teamID, Alias: alias, Status: StatusFailedAfterRetries}
}

// InvalidJSONError records a 200 response whose body could not be decoded.
func InvalidJSONError(teamID, alias, detail string) ErrorRecord {
	return ErrorRecord{TeamID: teamID, Alias: alias, Status: StatusInvalidJSON, Detail: detail}
}

// FetchFailureError records any other unexpected per-team failure.
func FetchFailureError(teamID, alias string, err error) ErrorRecord {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return ErrorRecord{TeamID: teamID, Alias: alias, Status: msg}
}

// CombinedOutput is the aggregate report written at the end of a run.
type CombinedOutput struct {
	GeneratedAt string        `json:"generated_at"`
	Count       int           `json:"count"`
	Errors      []ErrorRecord `json:"errors"`
	Rosters     []Roster      `json:"rosters"`
}

// NewCombinedOutput assembles the combined report. Count always equals the
// roster list length, and both lists serialize as arrays even when empty.
func NewCombinedOutput(generatedAt time.Time, rosters []Roster, errs []ErrorRecord) CombinedOutput {
	if rosters == nil {
		rosters = []Roster{}
	}
	if errs == nil {
		errs = []ErrorRecord{}
	}
	return CombinedOutput{
		GeneratedAt: timeutil.FormatTimestamp(generatedAt),
		Count:       len(rosters),
		Errors:      errs,
		Rosters:     rosters,
	}
}
