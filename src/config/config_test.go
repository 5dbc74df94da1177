package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, ".build-results", cfg.ResultsDir)
	assert.Equal(t, PolicyAlways, cfg.JobSummary)
	assert.Equal(t, PolicyNever, cfg.PRComment)
	assert.True(t, cfg.LogCacheReport)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_YAMLKeepsDefaultsForAbsentFields(t *testing.T) {
	path := writeConfig(t, "cfg.yml", "job_summary: on-failure\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, PolicyOnFailure, cfg.JobSummary)
	assert.Equal(t, ".build-results", cfg.ResultsDir)
	assert.True(t, cfg.LogCacheReport)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "cfg.toml", "results_dir = \"results\"\npr_comment = \"always\"\nlog_cache_report = false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, PolicyAlways, cfg.PRComment)
	assert.False(t, cfg.LogCacheReport)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "cfg.yml", "job_summary: [\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := defaults()
	cfg.JobSummary = "sometimes"
	cfg.PRComment = "maybe"
	cfg.ResultsDir = "../escape"
	cfg.CacheListener = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `job_summary: unknown policy "sometimes" (supported: always, never, on-failure)`)
	assert.Contains(t, err.Error(), `pr_comment: unknown policy "maybe"`)
	assert.Contains(t, err.Error(), `results_dir: "../escape" must be a relative path inside the runner temp dir`)
	assert.Contains(t, err.Error(), "cache_listener: must not be empty")
}

func TestValidate_ResultsDir(t *testing.T) {
	tests := []struct {
		dir string
		ok  bool
	}{
		{".build-results", true},
		{"results..v2", true},
		{"nested/results", true},
		{"", false},
		{"..", false},
		{"../escape", false},
		{"a/../../escape", false},
		{"/abs/results", false},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			cfg := defaults()
			cfg.ResultsDir = tt.dir

			err := Validate(cfg)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "results_dir")
			}
		})
	}
}

func TestPolicy_Applies(t *testing.T) {
	tests := []struct {
		policy    Policy
		anyFailed bool
		want      bool
	}{
		{PolicyAlways, false, true},
		{PolicyAlways, true, true},
		{PolicyNever, true, false},
		{PolicyOnFailure, false, false},
		{PolicyOnFailure, true, true},
		{"bogus", true, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.policy.Applies(tt.anyFailed), "%q.Applies(%v)", tt.policy, tt.anyFailed)
	}
}

func TestCacheListenerPath(t *testing.T) {
	cfg := defaults()
	assert.Equal(t, filepath.Join("/tmp/runner", ".gradle-actions", "cache-listener.json"), cfg.CacheListenerPath("/tmp/runner"))

	cfg.CacheListener = "/abs/listener.json"
	assert.Equal(t, "/abs/listener.json", cfg.CacheListenerPath("/tmp/runner"))
}
