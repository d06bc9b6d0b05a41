package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"GazetteDigest/internal/config"
	"GazetteDigest/internal/thread"
)

const postSeparator = "\n---\n"

var (
	threadDigest    string
	threadDate      string
	threadNoReverse bool
)

var threadCmd = &cobra.Command{
	Use:     "thread",
	Short:   "split a rendered digest into social posts",
	Example: `  $ gazettedigest thread --digest posts/dou_2_2022-03-01.txt --date 2022-03-01`,
	RunE:    runThread,
}

func init() {
	threadCmd.Flags().StringVarP(&threadDigest, "digest", "d", "", "rendered digest file")
	threadCmd.Flags().StringVar(&threadDate, "date", "", "date tag YYYY-MM-DD instead of today")
	threadCmd.Flags().BoolVar(&threadNoReverse, "no-reverse", false, "keep the digest order")
	_ = threadCmd.MarkFlagRequired("digest")
}

func runThread(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	clock, err := clockFor(cfg, threadDate)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(threadDigest)
	if err != nil {
		return fmt.Errorf("read digest: %w", err)
	}

	splitter := thread.NewSplitter(clock)
	splitter.Footer = cfg.Digest.FooterName
	splitter.Reverse = !threadNoReverse

	posts, err := splitter.Posts(string(raw))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(splitter.Thread(posts), postSeparator))
	return nil
}
