package summary

import (
	"fmt"
	"strings"

	"github.com/sofmeright/gradle-summary/src/results"
)

// PRCommentBody builds the pull request comment: a title, a link back to
// the workflow run when runURL is known, and the build table.
func PRCommentBody(runURL, workflow, job string, rs []results.BuildResult) string {
	var b strings.Builder
	b.WriteString("<h3>Job Summary for Gradle</h3>\n")
	if runURL != "" {
		label := strings.TrimSpace(workflow)
		if job != "" {
			label = fmt.Sprintf("%s :: <em>%s</em>", label, job)
		}
		if label == "" {
			label = "Workflow run"
		}
		fmt.Fprintf(&b, "<a href=\"%s\" target=\"_blank\"><h5>%s</h5></a>\n", runURL, label)
	}
	b.WriteString("\n")
	b.WriteString(RenderSummaryTable(rs))
	return b.String()
}
