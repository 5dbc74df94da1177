package summary

import (
	"fmt"
	"strings"

	"github.com/sofmeright/gradle-summary/src/output"
	"github.com/sofmeright/gradle-summary/src/results"
)

const (
	tableTitle   = "Gradle Builds"
	headingLevel = 3

	noResultsMessage = "No Gradle build results found. Summary table will not be generated."
)

// columns is shared by the HTML and the plain text tables.
var columns = []string{"Root Project", "Requested Tasks", "Gradle Version", "Build Outcome", "Build Scan™"}

// writeSummaryTable appends the heading and the build table to sink.
func writeSummaryTable(sink output.Sink, rs []results.BuildResult) {
	sink.AddHeading(tableTitle, headingLevel)
	sink.AddRaw(renderTable(rs))
}

// RenderSummaryTable returns the heading and build table as a standalone
// HTML fragment, or "" when there are no results.
func RenderSummaryTable(rs []results.BuildResult) string {
	if len(rs) == 0 {
		return ""
	}
	return fmt.Sprintf("<h%d>%s</h%d>\n%s", headingLevel, tableTitle, headingLevel, renderTable(rs))
}

func renderTable(rs []results.BuildResult) string {
	var b strings.Builder
	b.WriteString("\n<table>\n    <tr>\n")
	for _, c := range columns {
		fmt.Fprintf(&b, "        <th>%s</th>\n", c)
	}
	b.WriteString("    </tr>")
	for _, r := range rs {
		b.WriteString(renderRow(r))
	}
	b.WriteString("\n</table>\n")
	return b.String()
}

// renderRow renders one <tr>. Project name and tasks go in unescaped.
func renderRow(r results.BuildResult) string {
	return fmt.Sprintf(`
    <tr>
        <td>%s</td>
        <td>%s</td>
        <td align='center'>%s</td>
        <td align='center'>%s</td>
        <td>%s</td>
    </tr>`,
		r.RootProjectName,
		r.RequestedTasks,
		r.GradleVersion,
		outcomeGlyph(r),
		BuildScanBadge(r).Render(),
	)
}

func outcomeGlyph(r results.BuildResult) string {
	if r.BuildFailed {
		return ":x:"
	}
	return ":white_check_mark:"
}
