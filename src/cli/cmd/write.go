package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/gradle-summary/src/forge"
	"github.com/sofmeright/gradle-summary/src/output"
	"github.com/sofmeright/gradle-summary/src/results"
	"github.com/sofmeright/gradle-summary/src/summary"
)

var writeSummaryFile string

// openForge is swapped out in tests.
var openForge = forge.Open

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the build table and cache report to the job summary",
	Long: `Write the Gradle build table and the cache report to the GitHub Actions
job summary ($GITHUB_STEP_SUMMARY).

When the job_summary policy says no summary is wanted for this run, the
report is logged as plain text instead. When the pr_comment policy applies
and the run is for a pull request, the build table is also posted as a
comment on the pull request.`,
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().StringVar(&writeSummaryFile, "summary-file", "", "job summary file (default: $GITHUB_STEP_SUMMARY)")

	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	in, err := loadInputs()
	if err != nil {
		return err
	}

	path := writeSummaryFile
	if path == "" {
		path = os.Getenv("GITHUB_STEP_SUMMARY")
	}
	reporter := newReporter(output.NewJobSummary(path))

	anyFailed := results.AnyFailed(in.results)
	if cfg.JobSummary.Applies(anyFailed) {
		logger.Info().Str("file", path).Msg("generating job summary")
		if err := reporter.WriteJobSummary(ctx, in.results, in.listener); err != nil {
			return err
		}
	} else {
		logger.Info().Str("policy", string(cfg.JobSummary)).Msg("job summary not wanted for this run, logging instead")
		reporter.LogJobSummary(in.results, in.listener)
	}

	if cfg.PRComment.Applies(anyFailed) {
		return commentOnPR(ctx, in.results)
	}
	return nil
}

// newReporter wires the console logger and the cache report settings.
func newReporter(sink output.Sink) *summary.Reporter {
	r := summary.New(sink, output.NewActionsLogger(verbose))
	if !cfg.LogCacheReport {
		r.Cache = quietCache{r.Cache}
	}
	return r
}

// commentOnPR posts the build table to the pull request this run belongs
// to. Runs that are not for a pull request, or have no results, are skipped.
func commentOnPR(ctx context.Context, rs []results.BuildResult) error {
	if len(rs) == 0 {
		logger.Debug().Msg("no build results, skipping PR comment")
		return nil
	}
	number, ok := forge.PullRequestNumber(os.Getenv("GITHUB_REF"))
	if !ok {
		logger.Debug().Str("ref", os.Getenv("GITHUB_REF")).Msg("not a pull request, skipping PR comment")
		return nil
	}

	f, err := openForge(".")
	if err != nil {
		return fmt.Errorf("PR comment: %w", err)
	}

	body := summary.PRCommentBody(output.RunURL(), os.Getenv("GITHUB_WORKFLOW"), os.Getenv("GITHUB_JOB"), rs)
	c, err := f.CreateComment(ctx, forge.CommentOptions{Number: number, Body: body})
	if err != nil {
		return fmt.Errorf("posting PR comment: %w", err)
	}

	logger.Info().Str("forge", string(f.Provider())).Int("pr", number).Str("url", c.URL).Msg("posted job summary as PR comment")
	return nil
}
