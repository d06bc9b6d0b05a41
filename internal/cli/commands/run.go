package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"GazetteDigest/internal/app"
	"GazetteDigest/internal/config"
	"GazetteDigest/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "build and publish today's digest once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger := logging.New(cfg.Logging.Level)

		application, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer application.Close()

		result, err := application.Run(cmd.Context())
		if err != nil {
			logger.Error("digest run failed", "error", err)
			return err
		}
		if len(result.Sections) == 0 {
			logger.Info("nothing new to publish")
			return nil
		}
		logger.Info("digest published", "sections", len(result.Sections), "documents", len(result.DocumentIDs()))
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "publish the digest every day at the configured hour",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger := logging.New(cfg.Logging.Level)

		application, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer application.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return application.Schedule(ctx)
	},
}
