package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"GazetteDigest/internal/app"
	"GazetteDigest/internal/config"
	"GazetteDigest/internal/digest"
	"GazetteDigest/internal/logging"
)

const gazetteSection = 2

var (
	renderInput   string
	renderRouting string
	renderSeed    uint64
	renderOutDir  string
	renderDate    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "render a digest from a document file without publishing",
	Example: `  $ gazettedigest render --input docs.json
  $ gazettedigest render --input docs.yaml --routing routing.csv --out-dir posts`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "JSON or YAML file with the day's documents")
	renderCmd.Flags().StringVar(&renderRouting, "routing", "", "routing table (CSV or YAML)")
	renderCmd.Flags().Uint64Var(&renderSeed, "seed", 0, "seed for the footer link choice")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "", "also write the digest to this directory")
	renderCmd.Flags().StringVar(&renderDate, "date", "", "date the digest with YYYY-MM-DD instead of today")
	_ = renderCmd.MarkFlagRequired("input")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	cfg.Source.File = renderInput
	if renderRouting != "" {
		cfg.Routing.Path = renderRouting
		cfg.Routing.Rules = nil
	}

	clock, err := clockFor(cfg, renderDate)
	if err != nil {
		return err
	}
	opts := []app.Option{app.Offline(), app.WithClock(clock)}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, app.WithSeed(renderSeed))
	}

	application, err := app.New(cfg, logging.New(cfg.Logging.Level), opts...)
	if err != nil {
		return err
	}
	defer application.Close()

	result, err := application.Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Text)

	if renderOutDir == "" {
		return nil
	}
	path := filepath.Join(renderOutDir, digest.FileName(gazetteSection, application.Today()))
	if err := os.WriteFile(path, []byte(result.Text), 0o644); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	return nil
}
