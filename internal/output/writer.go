package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ncaafb-roster-fetcher/internal/domain"
)

const (
	rostersDir = "rosters"

	// CombinedFileName is the combined report written at the end of a run.
	CombinedFileName = "all_team_rosters.json"
)

// Writer persists per-team roster files and the combined output under a base
// directory, creating directories as needed. Writes are atomic (tmp+rename)
// and byte-identical rewrites are skipped so re-runs are idempotent.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath, now: time.Now}
}

// BasePath exposes the writer root path (primarily for logging and tests).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// RosterPath builds the path to one team's roster file.
func RosterPath(basePath, alias, teamID string) string {
	return filepath.Join(basePath, rostersDir, fmt.Sprintf("%s_%s.json", alias, teamID))
}

// CombinedPath builds the path to the combined output file.
func CombinedPath(basePath string) string {
	return filepath.Join(basePath, CombinedFileName)
}

// WriteRoster writes one team's roster file and records it in the manifest.
func (w *Writer) WriteRoster(alias, teamID string, roster domain.Roster) error {
	if w == nil {
		return fmt.Errorf("output writer not configured")
	}
	if teamID == "" {
		return fmt.Errorf("team id required")
	}
	if alias == "" {
		alias = domain.DefaultAlias
	}

	target := RosterPath(w.basePath, alias, teamID)
	if err := w.writeJSON(target, roster); err != nil {
		return err
	}
	return w.updateManifest(filepath.Base(target))
}

// WriteCombined writes the combined output file.
func (w *Writer) WriteCombined(combined domain.CombinedOutput) error {
	if w == nil {
		return fmt.Errorf("output writer not configured")
	}
	return w.writeJSON(CombinedPath(w.basePath), combined)
}

func (w *Writer) writeJSON(target string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, readErr := os.ReadFile(target); readErr == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
