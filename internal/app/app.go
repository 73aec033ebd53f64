package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ncaafb-roster-fetcher/internal/config"
	"ncaafb-roster-fetcher/internal/fetcher"
	"ncaafb-roster-fetcher/internal/logging"
	"ncaafb-roster-fetcher/internal/metrics"
	"ncaafb-roster-fetcher/internal/output"
	"ncaafb-roster-fetcher/internal/providers"
	"ncaafb-roster-fetcher/internal/providers/sportradar"
	"ncaafb-roster-fetcher/internal/teams"
)

// ErrMissingAPIKey indicates SPORTRADAR_API_KEY is not set; the run aborts
// before any network activity.
var ErrMissingAPIKey = errors.New("SPORTRADAR_API_KEY environment variable is not set")

// Run executes one fetch run: load teams, fetch every roster, write per-team
// and combined outputs. A non-nil error means the run failed as a whole;
// per-team errors are reported inside the combined output and exit cleanly.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Sportradar.APIKey == "" {
		return ErrMissingAPIKey
	}

	teamSpecs, err := teams.Load(cfg.TeamsFile)
	if err != nil {
		return err
	}

	recorder, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownMetrics(shutdownCtx)
	}()

	if promHandler != nil {
		srv := serveMetrics(cfg.Metrics.Port, promHandler, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	client := sportradar.NewClient(sportradar.Config{
		BaseURL: cfg.Sportradar.BaseURL,
		APIKey:  cfg.Sportradar.APIKey,
		Timeout: cfg.Fetch.Timeout,
	})
	provider := providers.NewRetryingProvider(client, logger, recorder, cfg.Fetch.MaxAttempts, cfg.Fetch.BackoffBase)
	writer := output.NewWriter(cfg.OutputDir)
	runner := fetcher.New(provider, writer, logger, recorder, cfg.Fetch.Pacing)

	logging.Info(logger, "run starting",
		logging.FieldCount, len(teamSpecs),
		logging.FieldPath, cfg.OutputDir,
	)

	combined, err := runner.Run(ctx, teamSpecs)
	if err != nil {
		return err
	}

	logging.Info(logger, "done",
		"success", combined.Count,
		logging.FieldErrors, len(combined.Errors),
		"combined_file", output.CombinedPath(cfg.OutputDir),
	)
	return nil
}

func serveMetrics(port string, handler http.Handler, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	srv := &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(logger, "metrics server failed", err)
		}
	}()
	return srv
}
