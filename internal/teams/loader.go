package teams

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"ncaafb-roster-fetcher/internal/domain"
)

// ErrNoTeams indicates the input document decoded cleanly but listed no teams.
var ErrNoTeams = errors.New("no teams found in input file")

type teamsDocument struct {
	Teams []domain.TeamSpec `json:"teams"`
}

// Load reads the teams input file ({"teams": [...]}) and returns the team
// specs in document order. An unreadable file, an undecodable document, and
// an empty teams list are all errors; callers treat them as fatal.
func Load(path string) ([]domain.TeamSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read teams file %s: %w", path, err)
	}
	defer f.Close()

	var doc teamsDocument
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode teams file %s: %w", path, err)
	}
	if len(doc.Teams) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTeams)
	}
	return doc.Teams, nil
}
