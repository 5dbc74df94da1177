package summary

import (
	"strings"

	"github.com/sofmeright/gradle-summary/src/output"
	"github.com/sofmeright/gradle-summary/src/results"
)

const (
	bannerLine    = "============================"
	separatorLine = "----------------------------"
)

// logSummaryTable mirrors writeSummaryTable as pipe-delimited lines.
func logSummaryTable(log output.Logger, rs []results.BuildResult) {
	log.Info(bannerLine)
	log.Info(tableTitle)
	log.Info(separatorLine)
	log.Info(strings.Join(columns, " | "))
	log.Info(separatorLine)
	for _, r := range rs {
		log.Info(plainRow(r))
	}
	log.Info(bannerLine)
}

func plainRow(r results.BuildResult) string {
	return strings.Join([]string{
		r.RootProjectName,
		r.RequestedTasks,
		r.GradleVersion,
		plainOutcome(r),
		plainScan(r),
	}, " | ")
}

func plainOutcome(r results.BuildResult) string {
	if r.BuildFailed {
		return "FAILED"
	}
	return "SUCCESS"
}

// plainScan follows the same precedence as BuildScanBadge.
func plainScan(r results.BuildResult) string {
	if r.BuildScanFailed {
		return "Publish failed"
	}
	return r.BuildScanURI
}
