package teststubs

import (
	"context"
	"sync/atomic"

	"ncaafb-roster-fetcher/internal/domain"
)

// StubProvider is a test double for providers.RosterProvider. Responses are
// keyed by team id; unknown ids return a minimal roster.
type StubProvider struct {
	Rosters map[string]domain.Roster
	Errs    map[string]error
	Calls   atomic.Int32
	TeamIDs []string
}

// FetchRoster returns the configured roster or error while tracking calls.
func (s *StubProvider) FetchRoster(ctx context.Context, teamID string) (domain.Roster, error) {
	_ = ctx
	s.Calls.Add(1)
	s.TeamIDs = append(s.TeamIDs, teamID)
	if err, ok := s.Errs[teamID]; ok {
		return nil, err
	}
	if roster, ok := s.Rosters[teamID]; ok {
		return roster, nil
	}
	return domain.Roster{"id": teamID}, nil
}

// WrittenRoster records one WriteRoster call on a StubWriter.
type WrittenRoster struct {
	Alias  string
	TeamID string
	Roster domain.Roster
}

// StubWriter is a test double for fetcher.RosterWriter.
type StubWriter struct {
	RosterErr   error
	CombinedErr error
	Written     []WrittenRoster
	Combined    []domain.CombinedOutput
}

func (s *StubWriter) WriteRoster(alias, teamID string, roster domain.Roster) error {
	if s.RosterErr != nil {
		return s.RosterErr
	}
	s.Written = append(s.Written, WrittenRoster{Alias: alias, TeamID: teamID, Roster: roster})
	return nil
}

func (s *StubWriter) WriteCombined(combined domain.CombinedOutput) error {
	if s.CombinedErr != nil {
		return s.CombinedErr
	}
	s.Combined = append(s.Combined, combined)
	return nil
}
