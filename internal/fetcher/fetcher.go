package fetcher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ncaafb-roster-fetcher/internal/domain"
	"ncaafb-roster-fetcher/internal/logging"
	"ncaafb-roster-fetcher/internal/metrics"
	"ncaafb-roster-fetcher/internal/providers"
)

const (
	defaultPacing = 150 * time.Millisecond
	progressEvery = 10
)

// RosterWriter persists fetch outputs to disk.
type RosterWriter interface {
	WriteRoster(alias, teamID string, roster domain.Roster) error
	WriteCombined(combined domain.CombinedOutput) error
}

// Fetcher processes teams strictly in input order: one team's retries and the
// pacing delay complete before the next team starts. Per-team failures are
// recorded in the combined output and never abort the run.
type Fetcher struct {
	provider providers.RosterProvider
	writer   RosterWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	pacing   time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// New constructs a Fetcher with sane defaults. Pacing is the fixed delay
// between teams, independent of the provider's retry backoff.
func New(provider providers.RosterProvider, writer RosterWriter, logger *slog.Logger, recorder *metrics.Recorder, pacing time.Duration) *Fetcher {
	if pacing <= 0 {
		pacing = defaultPacing
	}
	return &Fetcher{
		provider: provider,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		pacing:   pacing,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Run fetches every team and writes the combined output. The returned error
// is non-nil only for run-level failures (cancellation, combined write
// failure); per-team errors live in the combined output's error list.
func (f *Fetcher) Run(ctx context.Context, teamSpecs []domain.TeamSpec) (domain.CombinedOutput, error) {
	start := time.Now()
	results := make([]domain.Roster, 0, len(teamSpecs))
	errRecords := make([]domain.ErrorRecord, 0)

	for i, team := range teamSpecs {
		roster, rec, outcome, err := f.processTeam(ctx, team)
		if err != nil {
			f.metrics.RecordRun(time.Since(start), err)
			return domain.CombinedOutput{}, err
		}
		if rec != nil {
			errRecords = append(errRecords, *rec)
		} else {
			results = append(results, roster)
		}
		f.metrics.RecordTeamOutcome(outcome)

		if (i+1)%progressEvery == 0 {
			logging.Info(f.logger, "progress",
				"processed", i+1,
				"total", len(teamSpecs),
			)
		}

		if i < len(teamSpecs)-1 {
			if sleepErr := f.sleep(ctx, f.pacing); sleepErr != nil {
				f.metrics.RecordRun(time.Since(start), sleepErr)
				return domain.CombinedOutput{}, sleepErr
			}
		}
	}

	combined := domain.NewCombinedOutput(f.now(), results, errRecords)
	if f.writer != nil {
		if err := f.writer.WriteCombined(combined); err != nil {
			f.metrics.RecordRun(time.Since(start), err)
			return combined, err
		}
	}

	f.metrics.RecordRun(time.Since(start), nil)
	logging.Info(f.logger, "run complete",
		logging.FieldCount, combined.Count,
		logging.FieldErrors, len(combined.Errors),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return combined, nil
}

// processTeam resolves one team to either a roster or an error record. The
// returned error is non-nil only when the run itself must stop.
func (f *Fetcher) processTeam(ctx context.Context, team domain.TeamSpec) (domain.Roster, *domain.ErrorRecord, string, error) {
	alias := team.AliasOrDefault()

	if team.ID == "" {
		logging.Warn(f.logger, "team entry missing id", logging.FieldAlias, alias)
		rec := domain.MissingIDError(alias)
		return nil, &rec, metrics.OutcomeMissingID, nil
	}

	roster, err := f.provider.FetchRoster(ctx, team.ID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, "", ctxErr
		}
		rec, outcome := classifyFetchError(team.ID, alias, err)
		logging.Warn(f.logger, "team fetch failed",
			logging.FieldTeamID, team.ID,
			logging.FieldAlias, alias,
			"outcome", outcome,
			"err", err,
		)
		return nil, &rec, outcome, nil
	}

	roster = roster.WithMeta(team.Meta())
	if f.writer != nil {
		if writeErr := f.writer.WriteRoster(alias, team.ID, roster); writeErr != nil {
			logging.Error(f.logger, "roster write failed", writeErr,
				logging.FieldTeamID, team.ID,
				logging.FieldAlias, alias,
			)
			rec := domain.FetchFailureError(team.ID, alias, writeErr)
			return nil, &rec, metrics.OutcomeFailure, nil
		}
	}

	logging.Info(f.logger, "roster fetched",
		logging.FieldTeamID, team.ID,
		logging.FieldAlias, alias,
	)
	return roster, nil, metrics.OutcomeSuccess, nil
}

func classifyFetchError(teamID, alias string, err error) (domain.ErrorRecord, string) {
	if errors.Is(err, providers.ErrRetriesExhausted) {
		return domain.RetriesExhaustedError(teamID, alias), metrics.OutcomeRetriesExhausted
	}
	if st, ok := providers.AsStatusError(err); ok {
		return domain.HTTPStatusError(teamID, alias, st.Code, st.Body), metrics.OutcomeHTTPError
	}
	if dec, ok := providers.AsDecodeError(err); ok {
		return domain.InvalidJSONError(teamID, alias, dec.Err.Error()), metrics.OutcomeInvalidJSON
	}
	return domain.FetchFailureError(teamID, alias, err), metrics.OutcomeFailure
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
