// Package summary renders Gradle build results as a job summary table and
// as its plain text mirror for the console log.
package summary

import (
	"context"
	"fmt"

	"github.com/sofmeright/gradle-summary/src/caching"
	"github.com/sofmeright/gradle-summary/src/output"
	"github.com/sofmeright/gradle-summary/src/results"
)

// Reporter ties the build table and the cache report to their sinks.
type Reporter struct {
	Sink   output.Sink
	Logger output.Logger
	Cache  caching.Reporter
}

// New creates a Reporter using the default cache report.
func New(sink output.Sink, log output.Logger) *Reporter {
	return &Reporter{
		Sink:   sink,
		Logger: log,
		Cache:  caching.DefaultReporter{Color: output.UseColor()},
	}
}

// WriteJobSummary adds the build table and the cache report to the job
// summary, then writes the summary. The write happens once, last, even
// when there are no results.
func (r *Reporter) WriteJobSummary(ctx context.Context, rs []results.BuildResult, cache *caching.Listener) error {
	if len(rs) == 0 {
		r.Logger.Debug(noResultsMessage)
	} else {
		writeSummaryTable(r.Sink, rs)
	}

	r.Cache.WriteCachingReport(r.Sink, cache)

	if err := r.Sink.Write(ctx); err != nil {
		return fmt.Errorf("writing job summary: %w", err)
	}
	return nil
}

// LogJobSummary logs the build table and the cache report as plain text.
func (r *Reporter) LogJobSummary(rs []results.BuildResult, cache *caching.Listener) {
	if len(rs) == 0 {
		r.Logger.Debug(noResultsMessage)
	} else {
		logSummaryTable(r.Logger, rs)
	}

	r.Cache.LogCachingReport(r.Logger, cache)
}
