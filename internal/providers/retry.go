package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"ncaafb-roster-fetcher/internal/domain"
	"ncaafb-roster-fetcher/internal/logging"
	"ncaafb-roster-fetcher/internal/metrics"
)

const (
	defaultMaxAttempts = 4
	defaultBackoffBase = 2.0
)

type sleepFunc func(ctx context.Context, d time.Duration) error

// RetryDelay decides whether a failed attempt may be retried and how long to
// wait before the next one. attempt is 1-based, so the wait after the first
// failed attempt is floor(base^1) seconds.
//
// Transport failures wait at least one second; 429 responses honor
// Retry-After when it exceeds the backoff; 5xx responses use the bare
// backoff. Everything else is permanent.
func RetryDelay(err error, attempt int, base float64) (time.Duration, bool) {
	backoff := time.Duration(math.Floor(math.Pow(base, float64(attempt)))) * time.Second

	if rl, ok := AsRateLimitError(err); ok {
		if rl.RetryAfter > backoff {
			return rl.RetryAfter, true
		}
		return backoff, true
	}

	if st, ok := AsStatusError(err); ok {
		if st.Code >= 500 && st.Code < 600 {
			return backoff, true
		}
		return 0, false
	}

	var trErr *TransportError
	if errors.As(err, &trErr) {
		if backoff < time.Second {
			backoff = time.Second
		}
		return backoff, true
	}

	return 0, false
}

// retryingProvider wraps a RosterProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       RosterProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffBase float64
	sleep       sleepFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoffBase are <= 0, defaults are used.
func NewRetryingProvider(inner RosterProvider, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoffBase float64) RosterProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if backoffBase <= 0 {
		backoffBase = defaultBackoffBase
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
		sleep:       sleepCtx,
	}
}

func (r *retryingProvider) FetchRoster(ctx context.Context, teamID string) (domain.Roster, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		roster, err := r.inner.FetchRoster(ctx, teamID)
		r.metrics.RecordFetchAttempt(teamID, time.Since(start), err)
		if err == nil {
			return roster, nil
		}

		delay, retryable := RetryDelay(err, attempt, r.backoffBase)
		if !retryable {
			return nil, err
		}
		lastErr = err

		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(teamID, rl.RetryAfter)
		}

		if attempt == r.maxAttempts {
			break
		}

		logging.Warn(r.logger, "roster fetch retry",
			logging.FieldTeamID, teamID,
			logging.FieldAttempt, attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay.String(),
			"err", err,
		)

		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			return nil, sleepErr
		}
	}

	logging.Warn(r.logger, "roster fetch failed",
		logging.FieldTeamID, teamID,
		"attempts", r.maxAttempts,
		"err", lastErr,
	)
	return nil, fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
