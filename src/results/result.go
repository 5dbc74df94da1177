// Package results loads the per-invocation build result records written by
// the upstream Gradle build step into the run-scoped results directory.
package results

// BuildResult is the outcome of a single Gradle invocation, one per file.
// Fields are taken as recorded; empty strings are legal.
type BuildResult struct {
	RootProjectName string `json:"rootProjectName"`
	RootProjectDir  string `json:"rootProjectDir"`
	RequestedTasks  string `json:"requestedTasks"`
	GradleVersion   string `json:"gradleVersion"`
	GradleHomeDir   string `json:"gradleHomeDir"`
	BuildFailed     bool   `json:"buildFailed"`
	BuildScanURI    string `json:"buildScanUri"`
	BuildScanFailed bool   `json:"buildScanFailed"`

	// Source is the file name the record was read from.
	Source string `json:"-"`
}

// AnyFailed reports whether at least one build in results failed.
func AnyFailed(results []BuildResult) bool {
	for _, r := range results {
		if r.BuildFailed {
			return true
		}
	}
	return false
}
