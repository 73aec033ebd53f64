package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ncaafb-roster-fetcher/internal/config"
	"ncaafb-roster-fetcher/internal/domain"
	"ncaafb-roster-fetcher/internal/output"
	"ncaafb-roster-fetcher/internal/teams"
	"ncaafb-roster-fetcher/internal/testutil"
)

func testConfig(t *testing.T, baseURL, teamsContent string) config.Config {
	t.Helper()
	dir := t.TempDir()
	teamsPath := filepath.Join(dir, "teams.json")
	if err := os.WriteFile(teamsPath, []byte(teamsContent), 0o644); err != nil {
		t.Fatalf("write teams file: %v", err)
	}

	return config.Config{
		TeamsFile: teamsPath,
		OutputDir: filepath.Join(dir, "out"),
		Sportradar: config.SportradarConfig{
			BaseURL: baseURL,
			APIKey:  "test-key",
		},
		Fetch: config.FetchConfig{
			MaxAttempts: 2,
			BackoffBase: 2.0,
			Timeout:     5 * time.Second,
			Pacing:      time.Millisecond,
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}
}

func TestRunMissingAPIKey(t *testing.T) {
	cfg := testConfig(t, "http://unused", `{"teams": [{"id": "t-1"}]}`)
	cfg.Sportradar.APIKey = ""

	err := Run(context.Background(), cfg, testutil.NewTestLogger())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestRunUnreadableTeamsFile(t *testing.T) {
	cfg := testConfig(t, "http://unused", `{"teams": [{"id": "t-1"}]}`)
	cfg.TeamsFile = filepath.Join(t.TempDir(), "absent.json")

	if err := Run(context.Background(), cfg, testutil.NewTestLogger()); err == nil {
		t.Fatal("expected error for unreadable teams file")
	}
}

func TestRunEmptyTeams(t *testing.T) {
	cfg := testConfig(t, "http://unused", `{"teams": []}`)

	err := Run(context.Background(), cfg, testutil.NewTestLogger())
	if !errors.Is(err, teams.ErrNoTeams) {
		t.Fatalf("expected ErrNoTeams, got %v", err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("api_key"); got != "test-key" {
			t.Errorf("expected api_key query, got %q", got)
		}
		switch r.URL.Path {
		case "/teams/t-1/full_roster.json":
			fmt.Fprint(w, `{"id": "t-1", "players": [{"name": "QB One"}]}`)
		case "/teams/t-2/full_roster.json":
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "team not found"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	teamsDoc := `{
		"teams": [
			{"id": "t-1", "alias": "ALA", "market": "Alabama", "name": "Crimson Tide"},
			{"id": "t-2", "alias": "UGA"},
			{"alias": "noid"}
		]
	}`
	cfg := testConfig(t, srv.URL, teamsDoc)

	if err := Run(context.Background(), cfg, testutil.NewTestLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rosterPath := output.RosterPath(cfg.OutputDir, "ALA", "t-1")
	firstRun, err := os.ReadFile(rosterPath)
	if err != nil {
		t.Fatalf("expected roster file, got %v", err)
	}
	var roster map[string]any
	if err := json.Unmarshal(firstRun, &roster); err != nil {
		t.Fatalf("roster file not valid JSON: %v", err)
	}
	if _, ok := roster[domain.MetaField]; !ok {
		t.Fatalf("expected %s in roster file", domain.MetaField)
	}

	combinedBytes, err := os.ReadFile(output.CombinedPath(cfg.OutputDir))
	if err != nil {
		t.Fatalf("expected combined file, got %v", err)
	}
	var combined domain.CombinedOutput
	if err := json.Unmarshal(combinedBytes, &combined); err != nil {
		t.Fatalf("combined file not valid JSON: %v", err)
	}
	if combined.Count != 1 {
		t.Fatalf("expected 1 success, got %d", combined.Count)
	}
	if len(combined.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(combined.Errors))
	}

	// Failed teams must not leave per-team files behind.
	if _, err := os.Stat(output.RosterPath(cfg.OutputDir, "UGA", "t-2")); err == nil {
		t.Fatal("expected no file for failed team")
	}

	// A second identical run rewrites the roster file with identical bytes.
	if err := Run(context.Background(), cfg, testutil.NewTestLogger()); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}
	secondRun, err := os.ReadFile(rosterPath)
	if err != nil {
		t.Fatalf("expected roster file after rerun, got %v", err)
	}
	if !bytes.Equal(firstRun, secondRun) {
		t.Fatal("expected idempotent per-team output")
	}
}
