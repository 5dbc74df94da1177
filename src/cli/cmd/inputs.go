package cmd

import (
	"fmt"
	"os"

	"github.com/sofmeright/gradle-summary/src/caching"
	"github.com/sofmeright/gradle-summary/src/output"
	"github.com/sofmeright/gradle-summary/src/results"
)

// inputs is everything a report is rendered from.
type inputs struct {
	results  []results.BuildResult
	listener *caching.Listener
}

// resolveRunnerTemp returns --runner-temp or $RUNNER_TEMP.
func resolveRunnerTemp() (string, error) {
	if runnerTemp != "" {
		return runnerTemp, nil
	}
	if dir := os.Getenv("RUNNER_TEMP"); dir != "" {
		return dir, nil
	}
	return "", fmt.Errorf("RUNNER_TEMP not set: %w", results.ErrTempDirNotSet)
}

func loadInputs() (*inputs, error) {
	tempDir, err := resolveRunnerTemp()
	if err != nil {
		return nil, err
	}

	loader := results.NewLoader(tempDir)
	loader.Dir = cfg.ResultsDir

	logger.Debug().Str("dir", loader.Path()).Msg("loading build results")
	rs, err := loader.Load()
	if err != nil {
		return nil, err
	}
	for _, r := range rs {
		logger.Debug().
			Str("file", r.Source).
			Str("project", r.RootProjectName).
			Bool("failed", r.BuildFailed).
			Msg("build result")
	}

	listenerPath := cfg.CacheListenerPath(tempDir)
	logger.Debug().Str("path", listenerPath).Msg("loading cache listener")
	listener, err := caching.LoadListener(listenerPath)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("results", len(rs)).Int("cache_entries", len(listener.CacheEntries)).Msg("inputs loaded")
	return &inputs{results: rs, listener: listener}, nil
}

// quietCache keeps the cache report out of the console log when
// log_cache_report is off.
type quietCache struct{ caching.Reporter }

func (quietCache) LogCachingReport(output.Logger, *caching.Listener) {}
