package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAliasOrDefault(t *testing.T) {
	if got := (TeamSpec{Alias: "ALA"}).AliasOrDefault(); got != "ALA" {
		t.Fatalf("expected ALA, got %s", got)
	}
	if got := (TeamSpec{}).AliasOrDefault(); got != DefaultAlias {
		t.Fatalf("expected %s, got %s", DefaultAlias, got)
	}
}

func TestWithMetaEmbedsTeamMeta(t *testing.T) {
	team := TeamSpec{ID: "t-1", Alias: "ALA", Market: "Alabama", Name: "Crimson Tide"}
	roster := Roster{"players": []any{}}.WithMeta(team.Meta())

	meta, ok := roster[MetaField].(TeamMeta)
	if !ok {
		t.Fatalf("expected TeamMeta under %s, got %T", MetaField, roster[MetaField])
	}
	if meta.ID != "t-1" || meta.Alias != "ALA" || meta.Market != "Alabama" || meta.Name != "Crimson Tide" {
		t.Fatalf("unexpected meta %+v", meta)
	}
}

func TestErrorRecordConstructors(t *testing.T) {
	if rec := MissingIDError("ALA"); rec.Status != StatusMissingID || rec.TeamID != "" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec := HTTPStatusError("t-1", "ALA", 404, "not found"); rec.Status != 404 || rec.Detail != "not found" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec := RetriesExhaustedError("t-1", "ALA"); rec.Status != StatusFailedAfterRetries {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec := FetchFailureError("t-1", "ALA", errors.New("boom")); rec.Status != "boom" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec := FetchFailureError("t-1", "ALA", nil); rec.Status != "unknown error" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestNewCombinedOutputCountsAndDefaults(t *testing.T) {
	at := time.Date(2025, 10, 4, 12, 0, 0, 0, time.UTC)

	combined := NewCombinedOutput(at, nil, nil)
	if combined.Count != 0 {
		t.Fatalf("expected zero count, got %d", combined.Count)
	}
	if combined.GeneratedAt != "2025-10-04T12:00:00Z" {
		t.Fatalf("unexpected timestamp %s", combined.GeneratedAt)
	}

	data, err := json.Marshal(combined)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	// Empty lists must serialize as arrays, not null.
	if strings.Contains(string(data), "null") {
		t.Fatalf("expected empty arrays, got %s", data)
	}
}

func TestNewCombinedOutputCountMatchesRosters(t *testing.T) {
	rosters := []Roster{{"a": 1}, {"b": 2}}
	errs := []ErrorRecord{MissingIDError("x")}

	combined := NewCombinedOutput(time.Now(), rosters, errs)
	if combined.Count != len(combined.Rosters) {
		t.Fatalf("count %d does not match rosters %d", combined.Count, len(combined.Rosters))
	}
	if len(combined.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(combined.Errors))
	}
}
