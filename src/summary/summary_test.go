package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/gradle-summary/src/caching"
	"github.com/sofmeright/gradle-summary/src/output"
	"github.com/sofmeright/gradle-summary/src/results"
)

// recorder captures every call in order so tests can check sequencing
// across the sink, the logger and the cache report.
type recorder struct {
	calls    []string
	headings []string
	raw      []string
	info     []string
	debug    []string
	writeErr error
}

func (r *recorder) AddHeading(text string, level int) {
	r.calls = append(r.calls, "heading")
	r.headings = append(r.headings, text)
}

func (r *recorder) AddRaw(markup string) {
	r.calls = append(r.calls, "raw")
	r.raw = append(r.raw, markup)
}

func (r *recorder) Write(ctx context.Context) error {
	r.calls = append(r.calls, "write")
	return r.writeErr
}

func (r *recorder) Info(msg string) {
	r.calls = append(r.calls, "info")
	r.info = append(r.info, msg)
}

func (r *recorder) Debug(msg string) {
	r.debug = append(r.debug, msg)
}

type fakeCache struct{ rec *recorder }

func (c fakeCache) WriteCachingReport(sink output.Sink, l *caching.Listener) {
	c.rec.calls = append(c.rec.calls, "cache-write")
}

func (c fakeCache) LogCachingReport(log output.Logger, l *caching.Listener) {
	c.rec.calls = append(c.rec.calls, "cache-log")
}

func newReporter() (*Reporter, *recorder) {
	rec := &recorder{}
	return &Reporter{Sink: rec, Logger: rec, Cache: fakeCache{rec}}, rec
}

var appResult = results.BuildResult{
	RootProjectName: "app",
	RequestedTasks:  "build",
	GradleVersion:   "8.5",
	BuildScanURI:    "https://scans.example/1",
}

func TestWriteJobSummary_Ordering(t *testing.T) {
	r, rec := newReporter()

	err := r.WriteJobSummary(context.Background(), []results.BuildResult{appResult}, &caching.Listener{})
	require.NoError(t, err)

	assert.Equal(t, []string{"heading", "raw", "cache-write", "write"}, rec.calls)
	assert.Equal(t, []string{"Gradle Builds"}, rec.headings)
}

func TestWriteJobSummary_EmptyStillWritesCacheAndFlushes(t *testing.T) {
	r, rec := newReporter()

	require.NoError(t, r.WriteJobSummary(context.Background(), nil, nil))

	assert.Equal(t, []string{"cache-write", "write"}, rec.calls)
	assert.Equal(t, []string{noResultsMessage}, rec.debug)
}

func TestWriteJobSummary_SinkFailurePropagates(t *testing.T) {
	r, rec := newReporter()
	rec.writeErr = errors.New("summary upload rejected")

	err := r.WriteJobSummary(context.Background(), []results.BuildResult{appResult}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, rec.writeErr)
}

func TestLogJobSummary_Ordering(t *testing.T) {
	r, rec := newReporter()

	r.LogJobSummary([]results.BuildResult{appResult}, nil)

	require.NotEmpty(t, rec.calls)
	assert.Equal(t, "cache-log", rec.calls[len(rec.calls)-1])
	assert.NotContains(t, rec.calls, "write")
}

func TestLogJobSummary_EmptySkipsTable(t *testing.T) {
	r, rec := newReporter()

	r.LogJobSummary([]results.BuildResult{}, nil)

	assert.Equal(t, []string{"cache-log"}, rec.calls)
	assert.Empty(t, rec.info)
	assert.Equal(t, []string{noResultsMessage}, rec.debug)
}

func TestLogJobSummary_Lines(t *testing.T) {
	r, rec := newReporter()

	r.LogJobSummary([]results.BuildResult{appResult}, nil)

	assert.Equal(t, []string{
		"============================",
		"Gradle Builds",
		"----------------------------",
		"Root Project | Requested Tasks | Gradle Version | Build Outcome | Build Scan™",
		"----------------------------",
		"app | build | 8.5 | SUCCESS | https://scans.example/1",
		"============================",
	}, rec.info)
}

func TestLogJobSummary_PublishFailedWins(t *testing.T) {
	r, rec := newReporter()

	failed := results.BuildResult{
		RootProjectName: "lib",
		RequestedTasks:  "check",
		GradleVersion:   "7.6",
		BuildFailed:     true,
		BuildScanFailed: true,
		BuildScanURI:    "https://scans.example/ignored",
	}
	r.LogJobSummary([]results.BuildResult{failed}, nil)

	row := rec.info[5]
	assert.True(t, strings.HasSuffix(row, "FAILED | Publish failed"), row)
	assert.NotContains(t, row, "ignored")
}

func TestLogJobSummary_Idempotent(t *testing.T) {
	rs := []results.BuildResult{appResult, {RootProjectName: "b", GradleVersion: "8.0", BuildFailed: true}}

	r1, rec1 := newReporter()
	r1.LogJobSummary(rs, nil)
	r2, rec2 := newReporter()
	r2.LogJobSummary(rs, nil)
	r2.LogJobSummary(rs, nil)

	assert.Equal(t, rec1.info, rec2.info[:len(rec1.info)])
	assert.Equal(t, rec1.info, rec2.info[len(rec1.info):])
	assert.Equal(t, appResult.BuildScanURI, rs[0].BuildScanURI)
}

func TestRowsMatchInputOrder(t *testing.T) {
	rs := []results.BuildResult{
		{RootProjectName: "first", GradleVersion: "8.5"},
		{RootProjectName: "second", GradleVersion: "8.5", BuildFailed: true},
		{RootProjectName: "third", GradleVersion: "8.5"},
	}

	r, rec := newReporter()
	require.NoError(t, r.WriteJobSummary(context.Background(), rs, nil))
	r.LogJobSummary(rs, nil)

	html := rec.raw[0]
	assert.Equal(t, len(rs), strings.Count(html, "<tr>")-1)
	first := strings.Index(html, "<td>first</td>")
	second := strings.Index(html, "<td>second</td>")
	third := strings.Index(html, "<td>third</td>")
	assert.True(t, first < second && second < third)

	rows := rec.info[5 : 5+len(rs)]
	assert.True(t, strings.HasPrefix(rows[0], "first |"))
	assert.True(t, strings.HasPrefix(rows[1], "second |"))
	assert.True(t, strings.HasPrefix(rows[2], "third |"))
	assert.Contains(t, rows[1], "| FAILED |")
}

func TestRenderRow_Scenario(t *testing.T) {
	row := renderRow(appResult)

	assert.Contains(t, row, "<td>app</td>")
	assert.Contains(t, row, "<td>build</td>")
	assert.Contains(t, row, "<td align='center'>8.5</td>")
	assert.Contains(t, row, "<td align='center'>:white_check_mark:</td>")
	assert.Contains(t, row, `<a href="https://scans.example/1" rel="nofollow">`)
	assert.Contains(t, row, "PUBLISHED")
	assert.NotContains(t, row, "NOT_PUBLISHED")
}

func TestRenderRow_FailedGlyph(t *testing.T) {
	row := renderRow(results.BuildResult{RootProjectName: "x", GradleVersion: "8.5", BuildFailed: true})
	assert.Contains(t, row, "<td align='center'>:x:</td>")
}

func TestRenderRow_Unescaped(t *testing.T) {
	row := renderRow(results.BuildResult{RootProjectName: "<b>app</b>", RequestedTasks: ":a && :b", GradleVersion: "8.5"})
	assert.Contains(t, row, "<td><b>app</b></td>")
	assert.Contains(t, row, "<td>:a && :b</td>")
}

func TestBuildScanBadge_Precedence(t *testing.T) {
	tests := []struct {
		name    string
		failed  bool
		uri     string
		outcome string
		color   string
		link    string
	}{
		{"failed with uri", true, "https://scans.example/1", OutcomePublishFailed, "orange", troubleshootingURL},
		{"failed without uri", true, "", OutcomePublishFailed, "orange", troubleshootingURL},
		{"published", false, "https://scans.example/1", OutcomePublished, "06A0CE", "https://scans.example/1"},
		{"not published", false, "", OutcomeNotPublished, "lightgrey", scansServiceURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BuildScanBadge(results.BuildResult{BuildScanFailed: tt.failed, BuildScanURI: tt.uri})
			assert.Equal(t, ScanBadge{Outcome: tt.outcome, Color: tt.color, Link: tt.link}, b)
		})
	}
}

func TestScanBadge_Render(t *testing.T) {
	b := ScanBadge{Outcome: OutcomePublished, Color: "06A0CE", Link: "https://scans.example/1"}

	assert.Equal(t,
		"https://img.shields.io/badge/Build%20Scan%E2%84%A2-PUBLISHED-06A0CE?logo=Gradle",
		b.ImageURL())
	assert.Equal(t,
		`<a href="https://scans.example/1" rel="nofollow"><img src="https://img.shields.io/badge/Build%20Scan%E2%84%A2-PUBLISHED-06A0CE?logo=Gradle" alt="Build Scan PUBLISHED" /></a>`,
		b.Render())
}

func TestRenderSummaryTable(t *testing.T) {
	assert.Empty(t, RenderSummaryTable(nil))

	html := RenderSummaryTable([]results.BuildResult{appResult})
	assert.True(t, strings.HasPrefix(html, "<h3>Gradle Builds</h3>\n"), html)
	assert.Contains(t, html, "<th>Build Scan™</th>")
	assert.Contains(t, html, "<td>app</td>")
}

func TestWriteJobSummary_WithJobSummarySink(t *testing.T) {
	path := t.TempDir() + "/summary.md"
	sink := output.NewJobSummary(path)
	rec := &recorder{}

	r := &Reporter{Sink: sink, Logger: rec, Cache: caching.DefaultReporter{}}
	require.NoError(t, r.WriteJobSummary(context.Background(), []results.BuildResult{appResult}, &caching.Listener{}))

	assert.Empty(t, sink.String())
}
