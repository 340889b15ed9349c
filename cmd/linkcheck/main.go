// Command linkcheck runs the link-health checker against a site and
// reports broken links. Exit status 1 means at least one link is broken.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avb-dev/blogwatch/pkg/linkcheck"
)

var (
	flagTimeout     time.Duration
	flagConcurrency int
	flagDepth       int
	flagExternal    bool
	flagJSON        string
	flagVerbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "linkcheck <url>",
	Short: "Check a site for broken links",
	Long: `Crawl same-host pages starting at <url> and probe every discovered
link. Dead links are reported, not fatal: the crawl always completes.

Examples:
  linkcheck https://blog.example.com
  linkcheck --depth 3 --json report.json http://localhost:8080`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "per-request timeout")
	rootCmd.Flags().IntVar(&flagConcurrency, "concurrency", 8, "max parallel probes")
	rootCmd.Flags().IntVar(&flagDepth, "depth", 1, "how many levels of same-host pages to crawl")
	rootCmd.Flags().BoolVar(&flagExternal, "external", false, "probe links on other hosts too")
	rootCmd.Flags().StringVar(&flagJSON, "json", "", "write a JSON report to this path")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log healthy links as well")
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "linkcheck",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := linkcheck.DefaultOptions()
	opts.Timeout = flagTimeout
	opts.Concurrency = flagConcurrency
	opts.MaxDepth = flagDepth
	opts.CheckExternal = flagExternal

	target := args[0]
	logger.Info("starting crawl", "target", target, "depth", opts.MaxDepth)

	report, err := linkcheck.New(opts).Check(ctx, target)
	if err != nil {
		return fmt.Errorf("check %s: %w", target, err)
	}

	for _, l := range report.Links {
		switch {
		case l.Skipped:
			logger.Debug("skipped", "url", l.URL, "external", l.External)
		case !l.OK && l.Error != "":
			logger.Error("unreachable", "url", l.URL, "found_on", l.FoundOn, "err", l.Error)
		case !l.OK:
			logger.Error("broken", "url", l.URL, "found_on", l.FoundOn, "status", l.Status)
		default:
			logger.Debug("ok", "url", l.URL, "status", l.Status)
		}
	}
	logger.Info("crawl finished",
		"run_id", report.RunID,
		"checked", report.Checked,
		"broken", report.Broken,
		"duration_ms", report.DurationMS)

	if flagJSON != "" {
		f, err := os.Create(flagJSON)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		if err := report.WriteJSON(f); err != nil {
			return err
		}
		logger.Info("report written", "path", flagJSON)
	}

	if report.Broken > 0 {
		return fmt.Errorf("%d broken link(s)", report.Broken)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
