package providers

import (
	"context"

	"ncaafb-roster-fetcher/internal/domain"
)

// RosterProvider defines how upstream roster data is fetched. Implementations
// report failures through the typed errors in this package so callers can
// distinguish transient from permanent outcomes.
type RosterProvider interface {
	FetchRoster(ctx context.Context, teamID string) (domain.Roster, error)
}
