// Package commands holds the gazettedigest command tree.
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"GazetteDigest/internal/config"
)

const dayLayout = "2006-01-02"

var rootCmd = &cobra.Command{
	Use:   "gazettedigest",
	Short: "Daily digest of personnel acts published in the gazette",
	Long: `Builds the daily bulletin of high-office appointments and dismissals
published in section 2 of the official gazette, and publishes it.`,
	Example: `  # Render a digest from an exported file
  $ gazettedigest render --input docs.json --seed 7

  # Build and publish today's digest
  $ gazettedigest run

  # Turn a rendered digest into a social thread
  $ gazettedigest thread --digest dou_2_2022-03-01.txt`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(threadCmd)
}

// clockFor pins the clock to day when given, in the configured timezone.
func clockFor(cfg config.Config, day string) (func() time.Time, error) {
	if day == "" {
		return time.Now, nil
	}
	t, err := time.ParseInLocation(dayLayout, day, cfg.Scheduler.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q: %w", day, err)
	}
	return func() time.Time { return t }, nil
}
