package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ncaafb-roster-fetcher/internal/app"
	"ncaafb-roster-fetcher/internal/config"
	"ncaafb-roster-fetcher/internal/logging"
)

const appVersion = "dev"

func newRootCmd() *cobra.Command {
	var (
		teamsFile string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "rosterfetch",
		Short: "Fetch NCAAFB team rosters from the Sportradar API",
		Long: `rosterfetch reads a teams list, fetches each team's full roster from the
Sportradar NCAAFB API with retry/backoff, and writes one JSON file per team
plus a combined report. Per-team failures are recorded in the report and do
not fail the run.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if teamsFile != "" {
				cfg.TeamsFile = teamsFile
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			logger := logging.NewLogger(logging.Config{
				Level:   os.Getenv("LOG_LEVEL"),
				Format:  os.Getenv("LOG_FORMAT"),
				Service: "ncaafb-roster-fetcher",
				Version: appVersion,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Run(ctx, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&teamsFile, "teams", "", "path to the teams input file (overrides TEAMS_FILE)")
	cmd.Flags().StringVar(&outputDir, "out", "", "output directory (overrides OUTPUT_DIR)")
	return cmd
}

func main() {
	// .env is a local-dev convenience; absence is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
